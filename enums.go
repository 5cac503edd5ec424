package netlify

// ListSitesFilter restricts which sites [Client.ListSites] returns.
type ListSitesFilter string

const (
	// ListSitesFilterAll returns every site the user can access.
	ListSitesFilterAll ListSitesFilter = "all"

	// ListSitesFilterOwner returns sites owned by the user.
	ListSitesFilterOwner ListSitesFilter = "owner"

	// ListSitesFilterGuest returns sites the user collaborates on as a guest.
	ListSitesFilterGuest ListSitesFilter = "guest"
)

// ListSitesFilterValues lists the accepted filter values.
var ListSitesFilterValues = []string{
	string(ListSitesFilterAll),
	string(ListSitesFilterOwner),
	string(ListSitesFilterGuest),
}

func (f ListSitesFilter) String() string { return string(f) }

// Period is a billing period.
type Period string

const (
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

func (p Period) String() string { return string(p) }
