package store

//go:generate moq -pkg mocks -out ./mocks/store_mock.go . TransactionRecordStore
