package models

// Address types accepted by the storefront.
const (
	AddressTypeHome  = "Home"
	AddressTypeWork  = "Work"
	AddressTypeOther = "Other"
)

// Address represents the single saved delivery address of a user, persisted
// under the key "address_{userId}". Saving a new address overwrites the
// previous one.
// Example: {"fullName": "Priya Sharma", "phone": "9876543210", "address": "12 MG Road", "landmark": "Opp. City Mall", "pincode": "560001", "city": "Bengaluru", "state": "Karnataka", "type": "Home"}
type Address struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Street   string `json:"address"`
	Landmark string `json:"landmark,omitempty"`
	Pincode  string `json:"pincode"`
	City     string `json:"city"`
	State    string `json:"state"`
	Type     string `json:"type"`
}
