package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyRecipes         = "recipes"
	KeyIngredients     = "ingredients"
	KeySteps           = "steps"
	KeyStartCooking    = "start_cooking"
	KeyNextStep        = "next_step"
	KeyDone            = "done"
	KeyBack            = "back"
	KeyReload          = "reload"
	KeySettings        = "settings"
	KeyFile            = "file"
	KeyLanguage        = "language"
	KeySearchRecipes   = "search_recipes"
	KeyAllTags         = "all_tags"
	KeyNoRecipes       = "no_recipes"
	KeyCatalogResource = "catalog_resource"
	KeyShowImages      = "show_images"
	KeyThumbnailHeight = "thumbnail_height"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeyLoadingCatalog  = "loading_catalog"
	KeyLoadFailed      = "load_failed"
	KeySettingsSaved   = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Recipe Box",
		KeyRecipes:         "Recipes",
		KeyIngredients:     "Ingredients",
		KeySteps:           "Steps",
		KeyStartCooking:    "Start Cooking",
		KeyNextStep:        "Next Step",
		KeyDone:            "Done",
		KeyBack:            "Back",
		KeyReload:          "Reload",
		KeySettings:        "Settings",
		KeyFile:            "File",
		KeyLanguage:        "Language",
		KeySearchRecipes:   "Search recipes...",
		KeyAllTags:         "All",
		KeyNoRecipes:       "No recipes to show",
		KeyCatalogResource: "Catalog Resource",
		KeyShowImages:      "Show Images",
		KeyThumbnailHeight: "Thumbnail Height",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeyLoadingCatalog:  "Loading recipes...",
		KeyLoadFailed:      "Could not load recipes",
		KeySettingsSaved:   "Settings saved successfully!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Книга рецептов",
		KeyRecipes:         "Рецепты",
		KeyIngredients:     "Ингредиенты",
		KeySteps:           "Шаги",
		KeyStartCooking:    "Начать готовить",
		KeyNextStep:        "Следующий шаг",
		KeyDone:            "Готово",
		KeyBack:            "Назад",
		KeyReload:          "Обновить",
		KeySettings:        "Настройки",
		KeyFile:            "Файл",
		KeyLanguage:        "Язык",
		KeySearchRecipes:   "Поиск рецептов...",
		KeyAllTags:         "Все",
		KeyNoRecipes:       "Нет рецептов для показа",
		KeyCatalogResource: "Файл каталога",
		KeyShowImages:      "Показывать картинки",
		KeyThumbnailHeight: "Высота миниатюр",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeyLoadingCatalog:  "Загрузка рецептов...",
		KeyLoadFailed:      "Не удалось загрузить рецепты",
		KeySettingsSaved:   "Настройки успешно сохранены!",
	}
}
