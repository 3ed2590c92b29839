package event_bus

// Catalog lifecycle events published after a successful delete. Subscribers
// use them to clean up references held by other catalog entities.
const (
	ProgramDeletedEvent EventType = "program.deleted"
	ClassDeletedEvent   EventType = "class.deleted"
)

type ProgramDeleted struct {
	ProgramId string
}

type ClassDeleted struct {
	ClassId string
}
