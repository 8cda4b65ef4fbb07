package config

const (
	defaultAppsSubpath       = "steamapps/common"
	defaultGameDirName       = "UmamusumePrettyDerby"
	defaultMasterDB          = "master/master.mdb"
	defaultPersistentSubpath = "UmamusumePrettyDerby_Jpn_Data/Persistent"
	defaultExtractedSubpath  = defaultPersistentSubpath + "/assets/_gallopresources/bundle/resources/story/data"
	defaultStoryQuery        = "SELECT story_id_1, part_id, story_number, id FROM main_story_data WHERE story_id_1 > 0"
	defaultRowLimit          = 200
	defaultNativeScheme      = "native://"
	defaultCategory          = "Main"
	defaultFilePrefix        = "storytimeline_"
	defaultFileExt           = ".json"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Install: Install{
			CandidateRoots: defaultCandidateRoots(),
			AppsSubpath:    defaultAppsSubpath,
			GameDirNames:   []string{defaultGameDirName},
			AppIDs: map[string]string{
				"JP":     "3564400",
				"Global": "3224770",
			},
		},
		Layout: Layout{
			MasterDB:          defaultMasterDB,
			PersistentSubpath: defaultPersistentSubpath,
			ExtractedSubpath:  defaultExtractedSubpath,
		},
		Enumeration: Enumeration{
			Query:        defaultStoryQuery,
			RowLimit:     defaultRowLimit,
			NativeScheme: defaultNativeScheme,
			Category:     defaultCategory,
			FilePrefix:   defaultFilePrefix,
			FileExt:      defaultFileExt,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

func defaultCandidateRoots() map[string][]string {
	return map[string][]string{
		"linux": {
			"~/.steam/steam",
			"~/.local/share/Steam",
			"~/.var/app/com.valvesoftware.Steam/data/Steam",
		},
		"windows": {
			"C:/Program Files (x86)/Steam",
			"C:/Program Files/Steam",
		},
		"darwin": {
			"~/Library/Application Support/Steam",
		},
	}
}
