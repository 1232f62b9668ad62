package entity

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

func IsValidTheme(theme string) bool {
	return theme == ThemeLight || theme == ThemeDark
}
