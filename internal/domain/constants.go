package domain

// Namespace is the flag namespace used in item documents and setting keys.
const Namespace = "craftbench"

// FlagsPath is the document path holding this module's item flags.
const FlagsPath = "flags." + Namespace

// SpecialSymbolsPattern lists characters that may not appear in tag names and
// are replaced in persisted file names.
const SpecialSymbolsPattern = `[\\/ .,:*?"<>|+\-%!@]`

// Recipe defaults
const (
	DefaultRecipeName        = "New recipe"
	DefaultRecipeDescription = "Fill me in!"
	DefaultSavePath          = "/Crafting_Data"
	DefaultFileName          = "recipes"
	FileExtension            = ".json"
)
