// test/mocks/mocks.go

// Package mocks contains generated mocks for the application's interfaces.
// To regenerate mocks, run `make mocks` from the root directory.
package mocks

//go:generate mockgen -source=../../internal/core/ports/sale_repository.go -destination=sale_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/sale_ledger.go -destination=sale_ledger_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/drug_repository.go -destination=drug_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/drug_service.go -destination=drug_service_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/user_repository.go -destination=user_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/expense_repository.go -destination=expense_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/directory_repository.go -destination=directory_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/cache.go -destination=cache_repository_mock.go -package=mocks
