package adapter_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitcoin-sv/bank-wallet/internal/adapter"
	"github.com/bitcoin-sv/bank-wallet/internal/adapter/mocks"
	"github.com/bitcoin-sv/bank-wallet/internal/coin"
	"github.com/bitcoin-sv/bank-wallet/internal/logger"
)

const waitTimeout = time.Second

func newChainClientMock(events chan adapter.Event) *mocks.ChainClientMock {
	return &mocks.ChainClientMock{
		EventsFunc:        func() <-chan adapter.Event { return events },
		StopFunc:          func() {},
		StartFunc:         func(_ context.Context) error { return nil },
		ClearFunc:         func(_ context.Context) error { return nil },
		BalanceFunc:       func() int64 { return 150_000_000 },
		LastBlockInfoFunc: func() *adapter.BlockInfo { return &adapter.BlockInfo{Height: 800_000} },
		DebugInfoFunc:     func() string { return "debug" },
	}
}

func newAdapter(t *testing.T, client adapter.ChainClient) *adapter.Adapter {
	t.Helper()

	sut, err := adapter.New(coin.BTC, client, adapter.WithLogger(logger.Discard()))
	require.NoError(t, err)
	t.Cleanup(sut.Stop)

	return sut
}

func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()

	select {
	case v := <-ch:
		return v
	case <-time.After(waitTimeout):
		t.Fatal("timed out waiting for notification")
	}

	var zero T
	return zero
}

func requireEmpty[T any](t *testing.T, ch <-chan T) {
	t.Helper()

	select {
	case v := <-ch:
		t.Fatalf("unexpected notification: %v", v)
	case <-time.After(30 * time.Millisecond):
	}
}

func TestNew(t *testing.T) {
	_, err := adapter.New(coin.BTC, nil)
	require.ErrorIs(t, err, adapter.ErrClientNil)

	sut := newAdapter(t, newChainClientMock(make(chan adapter.Event)))

	assert.Equal(t, adapter.Syncing(0), sut.State())
	assert.Equal(t, 8, sut.Decimal())
	assert.Equal(t, 6, sut.ConfirmationsThreshold())
	assert.False(t, sut.Refreshable())
	assert.Equal(t, "debug", sut.DebugInfo())
	assert.Equal(t, "1.5", sut.Balance().String())
	require.NotNil(t, sut.LastBlockHeight())
	assert.Equal(t, int64(800_000), *sut.LastBlockHeight())
}

func TestAdapter_KitStateUpdated(t *testing.T) {
	// given
	events := make(chan adapter.Event)
	sut := newAdapter(t, newChainClientMock(events))

	stateCh, unsubState := sut.SubscribeState()
	defer unsubState()
	progressCh, unsubProgress := sut.SubscribeProgress()
	defer unsubProgress()

	// when progress is reported within syncing
	events <- adapter.KitStateUpdated{State: adapter.Syncing(0.25)}
	events <- adapter.KitStateUpdated{State: adapter.Syncing(0.25)}

	// then progress is streamed every time, state does not change
	assert.InDelta(t, 0.25, receive(t, progressCh), 1e-9)
	assert.InDelta(t, 0.25, receive(t, progressCh), 1e-9)
	requireEmpty(t, stateCh)

	// when synced is reported twice
	events <- adapter.KitStateUpdated{State: adapter.Synced()}
	events <- adapter.KitStateUpdated{State: adapter.Synced()}

	// then only one state change is notified
	assert.Equal(t, adapter.Synced(), receive(t, stateCh))
	requireEmpty(t, stateCh)

	// when not synced and syncing again are reported
	events <- adapter.KitStateUpdated{State: adapter.NotSynced()}
	events <- adapter.KitStateUpdated{State: adapter.NotSynced()}
	events <- adapter.KitStateUpdated{State: adapter.Syncing(0.5)}

	// then
	assert.Equal(t, adapter.NotSynced(), receive(t, stateCh))
	assert.Equal(t, adapter.Syncing(0.5), receive(t, stateCh))
	assert.InDelta(t, 0.5, receive(t, progressCh), 1e-9)
	requireEmpty(t, stateCh)
	assert.Equal(t, adapter.Syncing(0.5), sut.State())
}

func TestAdapter_TransactionsUpdated(t *testing.T) {
	// given
	events := make(chan adapter.Event)
	sut := newAdapter(t, newChainClientMock(events))

	txCh, unsub := sut.SubscribeTransactions()
	defer unsub()

	height := int64(100)

	// when
	events <- adapter.TransactionsUpdated{
		Inserted: []adapter.TransactionInfo{{
			Hash:      "a1",
			Amount:    12_345_678,
			Timestamp: 1_700_000_000,
			From:      []adapter.AddressInfo{{Address: "from-1", Mine: false}},
			To:        []adapter.AddressInfo{{Address: "to-1", Mine: true}, {Address: "to-2", Mine: false}},
		}},
		Updated: []adapter.TransactionInfo{{
			Hash:        "b2",
			BlockHeight: &height,
			Amount:      -50_000,
			Timestamp:   1_700_000_100,
		}},
		Deleted: []string{"c3"},
	}

	// then
	batch := receive(t, txCh)
	assert.Equal(t, coin.BTC, batch.Coin)
	assert.Equal(t, []string{"c3"}, batch.Deleted)
	require.Len(t, batch.Records, 2)

	inserted := batch.Records[0]
	assert.Equal(t, "a1", inserted.Hash)
	assert.Equal(t, coin.BTC, inserted.Coin)
	assert.Equal(t, "0.12345678", inserted.Amount.String())
	assert.Equal(t, int64(1_700_000_000), inserted.Timestamp)
	assert.Nil(t, inserted.Rate)
	require.Len(t, inserted.To, 2)
	assert.Equal(t, "to-1", inserted.To[0].Address)
	assert.True(t, inserted.To[0].Mine)
	assert.Equal(t, "from-1", inserted.From[0].Address)

	updated := batch.Records[1]
	assert.Equal(t, "b2", updated.Hash)
	assert.Equal(t, "-0.0005", updated.Amount.String())
	require.NotNil(t, updated.BlockHeight)
	assert.Equal(t, int64(100), *updated.BlockHeight)
}

func TestAdapter_Signals(t *testing.T) {
	// given
	events := make(chan adapter.Event)
	sut := newAdapter(t, newChainClientMock(events))

	balanceCh, unsubBalance := sut.SubscribeBalance()
	defer unsubBalance()
	blockCh, unsubBlock := sut.SubscribeLastBlock()
	defer unsubBlock()

	// when
	events <- adapter.BalanceUpdated{Balance: 1}
	events <- adapter.LastBlockInfoUpdated{Info: adapter.BlockInfo{Height: 1}}

	// then
	receive(t, balanceCh)
	receive(t, blockCh)
	requireEmpty(t, balanceCh)
	requireEmpty(t, blockCh)
}

func TestAdapter_StartClear(t *testing.T) {
	testCases := []struct {
		name     string
		startErr error
		clearErr error

		expectedStartErr error
		expectedClearErr error
	}{
		{
			name: "success",
		},
		{
			name:             "start and clear fail",
			startErr:         errors.New("peer unavailable"),
			clearErr:         errors.New("storage locked"),
			expectedStartErr: adapter.ErrStartFailed,
			expectedClearErr: adapter.ErrClearFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			client := newChainClientMock(make(chan adapter.Event))
			client.StartFunc = func(_ context.Context) error { return tc.startErr }
			client.ClearFunc = func(_ context.Context) error { return tc.clearErr }
			sut := newAdapter(t, client)

			// when
			startErr := sut.Start(context.Background())
			clearErr := sut.Clear(context.Background())

			// then
			if tc.expectedStartErr != nil {
				require.ErrorIs(t, startErr, tc.expectedStartErr)
				require.ErrorIs(t, startErr, tc.startErr)
			} else {
				require.NoError(t, startErr)
			}
			if tc.expectedClearErr != nil {
				require.ErrorIs(t, clearErr, tc.expectedClearErr)
			} else {
				require.NoError(t, clearErr)
			}
			assert.Len(t, client.StartCalls(), 1)
			assert.Len(t, client.ClearCalls(), 1)
		})
	}
}

func TestAdapter_Send(t *testing.T) {
	testCases := []struct {
		name    string
		amount  string
		sendErr error

		expectedValue  int64
		expectedCalls  int
		expectedErr    error
		expectedMaxFee string
	}{
		{
			name:          "amount scaled to satoshis",
			amount:        "0.12345678",
			expectedValue: 12_345_678,
			expectedCalls: 1,
		},
		{
			name:          "half satoshi rounded up",
			amount:        "0.000000015",
			expectedValue: 2,
			expectedCalls: 1,
		},
		{
			name:           "insufficient funds",
			amount:         "1",
			sendErr:        &adapter.NotEnoughFundsError{MaxFee: 10_000},
			expectedValue:  100_000_000,
			expectedCalls:  1,
			expectedErr:    adapter.ErrInsufficientFunds,
			expectedMaxFee: "0.0001",
		},
		{
			name:          "client failure",
			amount:        "1",
			sendErr:       errors.New("broadcast rejected"),
			expectedValue: 100_000_000,
			expectedCalls: 1,
			expectedErr:   adapter.ErrSendFailed,
		},
		{
			name:        "zero amount",
			amount:      "0",
			expectedErr: adapter.ErrInvalidAmount,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			client := newChainClientMock(make(chan adapter.Event))
			client.SendFunc = func(_ context.Context, _ string, _ int64) error { return tc.sendErr }
			sut := newAdapter(t, client)

			// when
			err := sut.Send(context.Background(), "1BoatSLRHtKNngkdXEeobR76b53LETtpyT", decimal.RequireFromString(tc.amount))

			// then
			require.Len(t, client.SendCalls(), tc.expectedCalls)
			if tc.expectedCalls > 0 {
				assert.Equal(t, tc.expectedValue, client.SendCalls()[0].Value)
				assert.Equal(t, "1BoatSLRHtKNngkdXEeobR76b53LETtpyT", client.SendCalls()[0].Address)
			}

			if tc.expectedErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.expectedErr)

			if tc.expectedMaxFee != "" {
				var insufficient *adapter.InsufficientFundsError
				require.ErrorAs(t, err, &insufficient)
				assert.Equal(t, tc.expectedMaxFee, insufficient.MaxFee.String())
			}
		})
	}
}

func TestAdapter_Fee(t *testing.T) {
	address := "1BoatSLRHtKNngkdXEeobR76b53LETtpyT"

	testCases := []struct {
		name   string
		fee    int64
		feeErr error

		expectedFee    string
		expectedErr    error
		expectedMaxFee string
	}{
		{
			name:        "fee scaled back to coin units",
			fee:         2_260,
			expectedFee: "0.0000226",
		},
		{
			name:           "insufficient funds",
			feeErr:         &adapter.NotEnoughFundsError{MaxFee: 123},
			expectedErr:    adapter.ErrInsufficientFunds,
			expectedMaxFee: "0.00000123",
		},
		{
			name:        "client failure",
			feeErr:      errors.New("no utxos"),
			expectedErr: adapter.ErrFeeFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			client := newChainClientMock(make(chan adapter.Event))
			client.FeeFunc = func(_ context.Context, _ int64, _ *string, _ bool) (int64, error) {
				return tc.fee, tc.feeErr
			}
			sut := newAdapter(t, client)

			// when
			fee, err := sut.Fee(context.Background(), decimal.RequireFromString("0.5"), &address, true)

			// then
			require.Len(t, client.FeeCalls(), 1)
			assert.Equal(t, int64(50_000_000), client.FeeCalls()[0].Value)
			assert.True(t, client.FeeCalls()[0].SenderPaysFee)
			assert.Equal(t, &address, client.FeeCalls()[0].Address)

			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				if tc.expectedMaxFee != "" {
					var insufficient *adapter.InsufficientFundsError
					require.ErrorAs(t, err, &insufficient)
					assert.Equal(t, tc.expectedMaxFee, insufficient.MaxFee.String())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedFee, fee.String())
		})
	}
}

func TestAdapter_ValidateAddress(t *testing.T) {
	client := newChainClientMock(make(chan adapter.Event))
	client.ValidateAddressFunc = func(_ context.Context, address string) error {
		if address == "invalid" {
			return errors.New("invalid checksum")
		}
		return nil
	}
	sut := newAdapter(t, client)

	require.NoError(t, sut.ValidateAddress(context.Background(), "valid"))
	require.ErrorIs(t, sut.ValidateAddress(context.Background(), "invalid"), adapter.ErrValidationFailed)
}

func TestAdapter_Transactions(t *testing.T) {
	infos := []adapter.TransactionInfo{
		{Hash: "h3", Amount: 3, Timestamp: 300},
		{Hash: "h2", Amount: 2, Timestamp: 200},
		{Hash: "h1", Amount: 1, Timestamp: 100},
	}

	t.Run("pages through records", func(t *testing.T) {
		// given
		client := newChainClientMock(make(chan adapter.Event))
		client.TransactionsFunc = func(_ context.Context, fromHash *string, limit int) ([]adapter.TransactionInfo, error) {
			start := 0
			if fromHash != nil {
				for i, info := range infos {
					if info.Hash == *fromHash {
						start = i + 1
					}
				}
			}
			end := min(start+limit, len(infos))
			return infos[start:end], nil
		}
		sut := newAdapter(t, client)

		// when
		firstPage, err := sut.Transactions(context.Background(), nil, 2)
		require.NoError(t, err)
		cursor := firstPage[len(firstPage)-1].Hash
		secondPage, err := sut.Transactions(context.Background(), &cursor, 2)
		require.NoError(t, err)

		// then
		require.Len(t, firstPage, 2)
		assert.Equal(t, "h3", firstPage[0].Hash)
		assert.Equal(t, "h2", firstPage[1].Hash)
		require.Len(t, secondPage, 1)
		assert.Equal(t, "h1", secondPage[0].Hash)
		assert.Equal(t, "0.00000001", secondPage[0].Amount.String())
	})

	t.Run("client returning too many records is trimmed", func(t *testing.T) {
		client := newChainClientMock(make(chan adapter.Event))
		client.TransactionsFunc = func(_ context.Context, _ *string, _ int) ([]adapter.TransactionInfo, error) {
			return infos, nil
		}
		sut := newAdapter(t, client)

		records, err := sut.Transactions(context.Background(), nil, 1)
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("errors", func(t *testing.T) {
		client := newChainClientMock(make(chan adapter.Event))
		client.TransactionsFunc = func(_ context.Context, _ *string, _ int) ([]adapter.TransactionInfo, error) {
			return nil, errors.New("db closed")
		}
		sut := newAdapter(t, client)

		_, err := sut.Transactions(context.Background(), nil, 10)
		require.ErrorIs(t, err, adapter.ErrTransactionsFetch)

		_, err = sut.Transactions(context.Background(), nil, -1)
		require.ErrorIs(t, err, adapter.ErrInvalidLimit)
	})
}

func TestAdapter_ParsePaymentAddress(t *testing.T) {
	testCases := []struct {
		name            string
		uri             string
		expectedAddress string
		expectedAmount  string
	}{
		{
			name:            "plain address",
			uri:             "1BoatSLRHtKNngkdXEeobR76b53LETtpyT",
			expectedAddress: "1BoatSLRHtKNngkdXEeobR76b53LETtpyT",
		},
		{
			name:            "uri with amount",
			uri:             "bitcoin:1BoatSLRHtKNngkdXEeobR76b53LETtpyT?amount=0.015&label=coffee",
			expectedAddress: "1BoatSLRHtKNngkdXEeobR76b53LETtpyT",
			expectedAmount:  "0.015",
		},
		{
			name:            "uri without amount",
			uri:             "BITCOIN:1BoatSLRHtKNngkdXEeobR76b53LETtpyT",
			expectedAddress: "1BoatSLRHtKNngkdXEeobR76b53LETtpyT",
		},
		{
			name:            "invalid amount ignored",
			uri:             "bitcoin:1BoatSLRHtKNngkdXEeobR76b53LETtpyT?amount=abc",
			expectedAddress: "1BoatSLRHtKNngkdXEeobR76b53LETtpyT",
		},
		{
			name:            "foreign scheme left untouched",
			uri:             "bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a",
			expectedAddress: "bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a",
		},
	}

	sut := newAdapter(t, newChainClientMock(make(chan adapter.Event)))

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := sut.ParsePaymentAddress(tc.uri)

			assert.Equal(t, tc.expectedAddress, actual.Address)
			if tc.expectedAmount == "" {
				assert.Nil(t, actual.Amount)
				return
			}
			require.NotNil(t, actual.Amount)
			assert.Equal(t, tc.expectedAmount, actual.Amount.String())
		})
	}
}

func TestAdapter_Stop(t *testing.T) {
	// given
	client := newChainClientMock(make(chan adapter.Event))
	sut, err := adapter.New(coin.BTC, client, adapter.WithLogger(logger.Discard()))
	require.NoError(t, err)

	stateCh, _ := sut.SubscribeState()
	txCh, _ := sut.SubscribeTransactions()

	// when
	sut.Stop()
	sut.Stop()

	// then
	_, ok := <-stateCh
	assert.False(t, ok)
	_, ok = <-txCh
	assert.False(t, ok)
	assert.Len(t, client.StopCalls(), 1)
}
