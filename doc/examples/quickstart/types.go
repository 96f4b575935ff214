package quickstart

// NewsStatus demonstrates an enum type: reflection cannot enumerate Go
// constants, so the values are declared explicitly.
type NewsStatus string

func (NewsStatus) EnumValues() []string {
	return []string{"DRAFT", "PUBLISHED", "ARCHIVED"}
}

type News struct {
	ID     int64      `json:"id"`
	Title  string     `json:"title" doc:"Headline shown in the feed"`
	Body   string     `json:"body,omitempty"`
	Status NewsStatus `json:"status"`
}

type CreateNewsParams struct {
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
}
