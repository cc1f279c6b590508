package data

// Action classifies what a request wants to do with a resource.
type Action int

const (
	// ActionRead covers safe operations: list and retrieve.
	ActionRead Action = iota
	// ActionCreate covers creating a new resource.
	ActionCreate
	// ActionModify covers updating or deleting an existing resource.
	ActionModify
)

// Resource classifies the kind of entity an action targets. The catalogue
// kinds (category, genre, title) share one permission shape, the authored
// kinds (review, comment) another.
type Resource int

const (
	ResourceCatalogue Resource = iota
	ResourceReview
	ResourceComment
	ResourceUser
)

// Permitted is the single authorization decision for the whole API. It
// reports whether actor may perform action on a resource of the given kind,
// where authorID is the ID of the resource's author (zero for resources that
// have none). Rules, in order of precedence:
//
//   - reads are always permitted, for anyone including the anonymous user
//   - admins and superusers may do anything
//   - moderators may mutate reviews and comments
//   - the author of a review or comment may create and mutate their own
//
// Everything else is denied. Creating a review or comment therefore requires
// an authenticated (non-anonymous) actor, and catalogue or user mutation
// requires admin or superuser.
func Permitted(actor *User, action Action, resource Resource, authorID int64) bool {
	if action == ActionRead {
		return true
	}
	if actor == nil || actor.IsAnonymous() {
		return false
	}
	if actor.IsAdmin() || actor.Superuser {
		return true
	}
	switch resource {
	case ResourceReview, ResourceComment:
		if actor.IsModerator() {
			return true
		}
		if action == ActionCreate {
			return true
		}
		return actor.ID == authorID
	default:
		return false
	}
}
