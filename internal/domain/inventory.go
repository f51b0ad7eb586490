package domain

// Actor is a character or other entity that owns an inventory.
type Actor struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Img    string   `json:"img,omitempty"`
	Owners []string `json:"owners"`
}

func (a Actor) OwnedBy(userID string) bool {
	for _, o := range a.Owners {
		if o == userID {
			return true
		}
	}
	return false
}
