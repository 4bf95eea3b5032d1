// Package domain defines the core business entities of the market catalog
// and the validation errors they can produce. Entities here carry no
// persistence or transport concerns; those live in the store and api layers.
package domain
