package valueobjects

import "fmt"

// BugCategory classifies a bug report.
type BugCategory string

const (
	BugErrorPage          BugCategory = "error_page"
	BugUnexpectedBehavior BugCategory = "unexpected_behavior"
	BugPerceivedLag       BugCategory = "perceived_lag"
	BugDataIssue          BugCategory = "data_issue"
	BugAccessIssue        BugCategory = "access_issue"
)

var validBugCategories = map[BugCategory]bool{
	BugErrorPage:          true,
	BugUnexpectedBehavior: true,
	BugPerceivedLag:       true,
	BugDataIssue:          true,
	BugAccessIssue:        true,
}

func (c BugCategory) String() string {
	return string(c)
}

func (c BugCategory) IsValid() bool {
	return validBugCategories[c]
}

func NewBugCategory(s string) (BugCategory, error) {
	c := BugCategory(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid bug category: %s", s)
	}
	return c, nil
}

// FeatureCategory classifies a feature request.
type FeatureCategory string

const (
	FeatureAesthetic     FeatureCategory = "aesthetic"
	FeatureFunctionality FeatureCategory = "functionality"
)

func (c FeatureCategory) String() string {
	return string(c)
}

func (c FeatureCategory) IsValid() bool {
	return c == FeatureAesthetic || c == FeatureFunctionality
}

func NewFeatureCategory(s string) (FeatureCategory, error) {
	c := FeatureCategory(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid feature category: %s", s)
	}
	return c, nil
}

// TaskKind classifies a task.
type TaskKind string

const (
	TaskDataUpdate    TaskKind = "data_update"
	TaskConfiguration TaskKind = "configuration"
	TaskDocumentation TaskKind = "documentation"
	TaskMaintenance   TaskKind = "maintenance"
	TaskResearch      TaskKind = "research"
)

var validTaskKinds = map[TaskKind]bool{
	TaskDataUpdate:    true,
	TaskConfiguration: true,
	TaskDocumentation: true,
	TaskMaintenance:   true,
	TaskResearch:      true,
}

func (k TaskKind) String() string {
	return string(k)
}

func (k TaskKind) IsValid() bool {
	return validTaskKinds[k]
}

func NewTaskKind(s string) (TaskKind, error) {
	k := TaskKind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid task type: %s", s)
	}
	return k, nil
}
