package models

// IssueActionOpened is the action GitHub reports when an issue is created
const IssueActionOpened = "opened"

// CreatedIssue is the part of a freshly filed issue the relay reports back
type CreatedIssue struct {
	ID      int64
	Number  int
	HTMLURL string
}

// IssueEvent is the part of a GitHub issue delivery the relay needs
type IssueEvent struct {
	Action      string
	IssueNumber int
	IssueBody   string
	SenderLogin string
}

// IsSelfTriggered reports whether the event echoes an issue this relay created
func (e IssueEvent) IsSelfTriggered() bool {
	return e.Action == IssueActionOpened
}
