package model

const MainDirectPushName = "main-direct-push"

// TrackingIdentity is the key used to find or create a board item.
type TrackingIdentity struct {
	CanonicalName string `json:"canonical_name"`
	// SecondaryName is tried when no item matches CanonicalName. Empty if same as CanonicalName.
	SecondaryName string `json:"secondary_name,omitempty"`
}

func (x TrackingIdentity) String() string {
	return x.CanonicalName
}

// Names returns lookup candidates in priority order without duplicates.
func (x TrackingIdentity) Names() []string {
	names := []string{x.CanonicalName}
	if x.SecondaryName != "" && x.SecondaryName != x.CanonicalName {
		names = append(names, x.SecondaryName)
	}
	return names
}
