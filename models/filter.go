package models

import "go.mongodb.org/mongo-driver/bson"

// Filter is the equality-only query shape the dashboards need. Empty fields are ignored.
type Filter struct {
	Status            Status
	HallID            string
	HallManagerID     string
	ServiceProviderID string
	Type              string
}

// ToBSON renders the filter as a Mongo query document.
func (f Filter) ToBSON() bson.M {
	q := bson.M{}
	if f.Status != "" {
		q["status"] = f.Status
	}
	if f.HallID != "" {
		q["hallId"] = f.HallID
	}
	if f.HallManagerID != "" {
		q["hallManagerId"] = f.HallManagerID
	}
	if f.ServiceProviderID != "" {
		q["serviceProviderId"] = f.ServiceProviderID
	}
	if f.Type != "" {
		q["type"] = f.Type
	}
	return q
}
