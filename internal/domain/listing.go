package domain

// Unit represents a physical housing unit a listing advertises
type Unit struct {
	ID           string
	Address      string
	Rooms        int
	Floor        int
	SquareMeters float64
	Available    bool
}

// ListingStatus is the lifecycle state of a listing
type ListingStatus string

const (
	ListingDraft     ListingStatus = "draft"
	ListingPublished ListingStatus = "published"
	ListingHidden    ListingStatus = "hidden"
	ListingDeleted   ListingStatus = "deleted"
)

// listingTransitions is the transition-validity table. Re-applying the
// current status is permitted; deleted is terminal.
var listingTransitions = map[ListingStatus][]ListingStatus{
	ListingDraft:     {ListingDraft, ListingPublished, ListingDeleted},
	ListingPublished: {ListingPublished, ListingHidden, ListingDeleted},
	ListingHidden:    {ListingHidden, ListingPublished, ListingDeleted},
	ListingDeleted:   {},
}

// CanTransition reports whether the listing may move to the given status
func (s ListingStatus) CanTransition(to ListingStatus) bool {
	for _, next := range listingTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Listing is a draft or published advertisement for a Unit
type Listing struct {
	ID          string
	Title       string
	Description string
	Price       float64
	MinStay     int // nights
	MaxStay     int
	Images      []string
	Status      ListingStatus
	UnitID      string
	OwnerID     string
	ReviewIDs   []string
}

// ListingUpdate carries the fields an edit may overwrite; nil means untouched
type ListingUpdate struct {
	Title       *string
	Description *string
	Price       *float64
	MinStay     *int
	MaxStay     *int
	Images      []string
}

// UnitRepository defines data access for units
type UnitRepository interface {
	Save(unit *Unit) error
	GetByID(id string) (*Unit, error)
	List() ([]*Unit, error)
}

// ListingRepository defines data access for listings
type ListingRepository interface {
	Save(listing *Listing) error
	GetByID(id string) (*Listing, error)
	Delete(id string) error
	List() ([]*Listing, error)
}
