// test/mocks/mocks.go

// Package mocks contains generated mocks for the application's interfaces.
// To regenerate mocks, run `make mocks` from the root directory.
package mocks

//go:generate mockgen -source=../../internal/core/ports/user.go -destination=user_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/product.go -destination=product_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/location.go -destination=location_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/partner.go -destination=partner_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/order.go -destination=order_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/inventory.go -destination=inventory_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/hasher.go -destination=hasher_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/invalidator.go -destination=invalidator_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/database.go -destination=database_mock.go -package=mocks
