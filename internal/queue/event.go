package queue

// EventType names the domain event carried by a stream message.
type EventType string

const (
	// EventPagePublished fires after a draft is copied to live.
	EventPagePublished EventType = "page_published"
	// EventApplicationSubmitted fires after a candidate applies to a job.
	EventApplicationSubmitted EventType = "application_submitted"
)

func (t EventType) IsValid() bool {
	return t == EventPagePublished || t == EventApplicationSubmitted
}
