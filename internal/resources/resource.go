// Package resources finds, deduplicates and ranks external learning
// resources for curriculum topics.
package resources

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/abhisek/pathwise/internal/skillgraph"
)

// Type is the kind of learning artifact.
type Type string

const (
	TypeVideo       Type = "video"
	TypeCourse      Type = "course"
	TypeArticle     Type = "article"
	TypeInteractive Type = "interactive"
	TypeBook        Type = "book"
	TypePodcast     Type = "podcast"
)

// DefaultContentTypes are requested when a caller does not filter by type.
func DefaultContentTypes() []Type {
	return []Type{TypeVideo, TypeCourse, TypeArticle, TypeInteractive}
}

// Platform names.
const (
	PlatformYouTube      = "youtube"
	PlatformCoursera     = "coursera"
	PlatformEdX          = "edx"
	PlatformKhanAcademy  = "khan_academy"
	PlatformMITOCW       = "mit_ocw"
	PlatformFreeCodeCamp = "freecodecamp"
	PlatformGitHub       = "github"
	PlatformMedium       = "medium"
	PlatformPodcast      = "podcast"
	PlatformWeb          = "web"
	PlatformAICurator    = "ai_curator"
)

// Resource is an external learning artifact. It is a value type: the
// ranker copies and adjusts resources but never mutates a provider's slice.
type Resource struct {
	ID              string                `json:"id"`
	Title           string                `json:"title"`
	Description     string                `json:"description"`
	URL             string                `json:"url"`
	Platform        string                `json:"platform"`
	Type            Type                  `json:"type"`
	DurationMinutes *int                  `json:"duration"`
	Difficulty      skillgraph.Difficulty `json:"difficulty"`
	Rating          *float64              `json:"rating"`
	EnrollmentCount *int                  `json:"enrollment_count"`
	Tags            []string              `json:"tags"`
	Language        string                `json:"language"`
	LastUpdated     *string               `json:"last_updated"`
	Instructor      *string               `json:"instructor"`
	Thumbnail       *string               `json:"thumbnail"`
}

// idSpace namespaces resource IDs.
var idSpace = uuid.MustParse("6f1c8a52-3b0e-4f57-9d1e-2a7c4b9e0d13")

// NewID derives a stable resource ID from its provenance.
func NewID(platform, term string, index int) string {
	return uuid.NewSHA1(idSpace, []byte(platform+"\x00"+term+"\x00"+strconv.Itoa(index))).String()
}

// normalize fills defaults so no resource has a nil collection.
func (r Resource) normalize() Resource {
	if r.Tags == nil {
		r.Tags = []string{}
	}
	if r.Language == "" {
		r.Language = "en"
	}
	if r.Difficulty == "" {
		r.Difficulty = skillgraph.Intermediate
	}
	return r
}

func ptr[T any](v T) *T { return &v }
