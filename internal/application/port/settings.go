package port

// SettingsArray is a typed key/value store organized in named arrays of
// records. Perspectives are written as one array of {Name, State} records.
type SettingsArray interface {
	BeginWriteArray(name string, size int)
	SetArrayIndex(i int)
	SetValue(key string, value any)
	// BeginReadArray opens the array and returns its size.
	BeginReadArray(name string) int
	Value(key string) any
	EndArray()
}

// SettingsSyncer is implemented by settings stores that buffer writes.
type SettingsSyncer interface {
	Sync() error
}
