package logger

// Standard field names for consistent structured logging across the engine.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Identity and context
	FieldSessionID = "session_id"
	FieldUserID    = "user_id"
	FieldLanguage  = "language"

	// Catalog
	FieldEntityID     = "entity_id"
	FieldEntityName   = "entity_name"
	FieldAttributeID  = "attribute_id"
	FieldAttributeKey = "attribute_key"
	FieldCatalogPath  = "catalog_path"

	// Gameplay
	FieldAnswer        = "answer"
	FieldMode          = "mode"
	FieldQuestionCount = "question_count"
	FieldGuessCount    = "guess_count"
	FieldCandidates    = "candidates"
	FieldWeight        = "weight"
	FieldEntropyBits   = "entropy_bits"
	FieldInfoGain      = "info_gain"

	// Errors
	FieldError = "error"

	// Counts and sizes
	FieldCount      = "count"
	FieldEntities   = "entities"
	FieldAttributes = "attributes"

	// Timing
	FieldDurationMS = "duration_ms"

	// Files and paths
	FieldFile = "file"
	FieldPath = "path"
)
