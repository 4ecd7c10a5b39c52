package adapter

//go:generate moq -pkg mocks -out ./mocks/chain_client_mock.go . ChainClient
