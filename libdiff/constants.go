package libdiff

const (
	OpKey    = "op"
	FromKey  = "from"
	ToKey    = "to"
	PatchKey = "patch"

	AddOp     = "add"
	RemoveOp  = "remove"
	ReplaceOp = "replace"
)
