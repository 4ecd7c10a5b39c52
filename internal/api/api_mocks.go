package api

//go:generate moq -pkg mocks -out ./mocks/currency_context_mock.go . CurrencyContext
//go:generate moq -pkg mocks -out ./mocks/rate_provider_mock.go . RateProvider
//go:generate moq -pkg mocks -out ./mocks/record_reader_mock.go . RecordReader
