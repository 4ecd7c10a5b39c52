package rate

//go:generate moq -pkg mocks -out ./mocks/network_client_mock.go . NetworkClient
//go:generate moq -pkg mocks -out ./mocks/storage_mock.go . Storage
//go:generate moq -pkg mocks -out ./mocks/record_store_mock.go . RecordStore
//go:generate moq -pkg mocks -out ./mocks/wallet_registry_mock.go . WalletRegistry
//go:generate moq -pkg mocks -out ./mocks/currency_context_mock.go . CurrencyContext
