package client

const themeStorageKey = "theme"

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Theme returns the stored preference, defaulting to light.
func Theme(storage Storage) string {
	if v, ok := storage.Get(themeStorageKey); ok && v == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

func SetTheme(storage Storage, theme string) error {
	return storage.Set(themeStorageKey, theme)
}
