package naming

import "strings"

// MaxLabelLength is the longest label Flywheel accepts for a group or
// project.
const MaxLabelLength = 64

// Fixed identifiers for the release structure of a published project.
const (
	MasterProjectID    = "master-project"
	MasterProjectLabel = "Master Project"
)

// SanitizeLabel truncates a free-text label to the platform limit. No
// character-set restriction applies to labels.
func SanitizeLabel(label string) string {
	runes := []rune(label)
	if len(runes) <= MaxLabelLength {
		return label
	}
	return string(runes[:MaxLabelLength])
}

// SanitizeGroupID rewrites a free-text name into a valid group ID:
// lowercase, spaces replaced with underscores, and every character outside
// [a-z0-9_-] dropped. Uniqueness is not enforced here; a collision surfaces
// as a remote error. A fully-stripped input yields an empty string.
func SanitizeGroupID(id string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(id) {
		switch {
		case r == ' ':
			b.WriteRune('_')
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Slug converts a name into a URL-safe identifier segment: lowercase, with
// every run of non-alphanumeric characters collapsed into a single dash and
// edge dashes trimmed.
func Slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if dash && b.Len() > 0 {
				b.WriteRune('-')
			}
			dash = false
			b.WriteRune(r)
			continue
		}
		dash = true
	}
	return b.String()
}

// AcceptedProjectID returns the ID of the accepted-data project within a
// center group.
func AcceptedProjectID(primary bool, projectName string) string {
	return projectID(primary, projectName, "accepted")
}

// AcceptedLabel returns the display label of the accepted-data project.
func AcceptedLabel(projectName string) string {
	return projectName + " Accepted"
}

// IngestProjectID returns the ID of the ingest project for one datatype
// within a center group.
func IngestProjectID(primary bool, projectName, datatype string) string {
	return projectID(primary, projectName, "ingest-"+strings.ToLower(datatype))
}

// IngestLabel returns the display label of the ingest project for one
// datatype.
func IngestLabel(projectName, datatype string) string {
	return projectName + " " + capitalize(datatype) + " Ingest"
}

// ReleaseGroupID returns the ID of the release group for a published
// project.
func ReleaseGroupID(projectName string) string {
	return "release-" + Slug(projectName)
}

// ReleaseGroupLabel returns the display label of the release group.
func ReleaseGroupLabel(projectName string) string {
	return projectName + " Release"
}

// projectID appends the project slug to the prefix unless the project is
// the primary project of its coordinating center.
func projectID(primary bool, projectName, prefix string) string {
	if primary {
		return prefix
	}
	return prefix + "-" + Slug(projectName)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
