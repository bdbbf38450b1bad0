package models

// CatalogSummary holds the counters shown on the catalog landing page.
type CatalogSummary struct {
	Books              int64 `json:"num_books"`
	Instances          int64 `json:"num_instances"`
	InstancesAvailable int64 `json:"num_instances_available"`
	Authors            int64 `json:"num_authors"`
	Genres             int64 `json:"num_genres"`
}
