package domain

import (
	"fmt"
	"strings"
)

// EventCategory is the closed enumeration of event kinds. The storage
// value is the enum name; the API exchanges display names.
type EventCategory string

const (
	CategorySocialActivities       EventCategory = "SOCIAL_ACTIVITIES"
	CategoryArtCulture             EventCategory = "ART_CULTURE"
	CategoryCommunityEnvironment   EventCategory = "COMMUNITY_ENVIRONMENT"
	CategoryBusinessCareer         EventCategory = "BUSINESS_CAREER"
	CategoryLanguage               EventCategory = "LANGUAGE"
	CategoryGames                  EventCategory = "GAMES"
	CategoryPoliticalOrganizations EventCategory = "POLITICAL_ORGANIZATIONS"
	CategoryMusic                  EventCategory = "MUSIC"
	CategoryReligionSpirituality   EventCategory = "RELIGION_SPIRITUALITY"
	CategoryHealthWellness         EventCategory = "HEALTH_WELLNESS"
	CategoryScienceEducation       EventCategory = "SCIENCE_EDUCATION"
	CategorySupportCoaching        EventCategory = "SUPPORT_COACHING"
	CategorySportsFitness          EventCategory = "SPORTS_FITNESS"
	CategoryTechnology             EventCategory = "TECHNOLOGY"
	CategoryTravel                 EventCategory = "TRAVEL"
)

var categoryDisplayNames = map[EventCategory]string{
	CategorySocialActivities:       "Social Activities",
	CategoryArtCulture:             "Art & Culture",
	CategoryCommunityEnvironment:   "Community & Environment",
	CategoryBusinessCareer:         "Business & Career",
	CategoryLanguage:               "Language",
	CategoryGames:                  "Games",
	CategoryPoliticalOrganizations: "Political Organizations",
	CategoryMusic:                  "Music",
	CategoryReligionSpirituality:   "Religion & Spirituality",
	CategoryHealthWellness:         "Health & Wellness",
	CategoryScienceEducation:       "Science & Education",
	CategorySupportCoaching:        "Support & Coaching",
	CategorySportsFitness:          "Sports & Fitness",
	CategoryTechnology:             "Technology",
	CategoryTravel:                 "Travel",
}

// DisplayName returns the human-readable name exchanged over the API.
func (c EventCategory) DisplayName() string {
	return categoryDisplayNames[c]
}

// AllCategories returns every known category.
func AllCategories() []EventCategory {
	out := make([]EventCategory, 0, len(categoryDisplayNames))
	for category := range categoryDisplayNames {
		out = append(out, category)
	}
	return out
}

// CategoryFromDisplayName resolves a display name (case-insensitive)
// to its category.
func CategoryFromDisplayName(displayName string) (EventCategory, error) {
	for category, name := range categoryDisplayNames {
		if strings.EqualFold(name, displayName) {
			return category, nil
		}
	}
	return "", fmt.Errorf("unknown event category: %s", displayName)
}
