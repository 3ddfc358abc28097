package logging

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldPath        = "path"
	FieldFormat      = "format"
	FieldLine        = "line"
	FieldReason      = "reason"
	FieldEntries     = "entries"
	FieldSkipped     = "skipped"
	FieldDescription = "description"
	FieldAmount      = "amount"
	FieldCategory    = "category"
	FieldPolicy      = "policy"
)

// Component names
const (
	ComponentLedger  = "ledger"
	ComponentJournal = "journal"
	ComponentTracker = "tracker"
	ComponentShell   = "shell"
)

// Operations
const (
	OpLoad   = "load"
	OpSave   = "save"
	OpAppend = "append"
	OpSubmit = "submit"
)
