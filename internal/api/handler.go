package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bitcoin-sv/bank-wallet/internal/adapter"
	"github.com/bitcoin-sv/bank-wallet/internal/coin"
	"github.com/bitcoin-sv/bank-wallet/internal/currency"
	"github.com/bitcoin-sv/bank-wallet/internal/txrecord"
	"github.com/bitcoin-sv/bank-wallet/internal/txrecord/store"
	"github.com/bitcoin-sv/bank-wallet/internal/wallet"
)

var ErrRateNotAvailable = errors.New("rate not available")

type Handler struct {
	logger     *slog.Logger
	currencies CurrencyContext
	rates      RateProvider
	wallets    WalletRegistry
	records    RecordReader
	titles     TitleMapper
}

type Option func(h *Handler)

// WithRecordReader enables overlaying stored rates on transactions returned by the adapter.
func WithRecordReader(r RecordReader) Option {
	return func(h *Handler) {
		h.records = r
	}
}

func NewHandler(logger *slog.Logger, currencies CurrencyContext, rates RateProvider, wallets WalletRegistry, titles TitleMapper, opts ...Option) *Handler {
	h := &Handler{
		logger:     logger.With(slog.String("module", "api-handler")),
		currencies: currencies,
		rates:      rates,
		wallets:    wallets,
		titles:     titles,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

func (h *Handler) Register(e *echo.Echo) {
	g := e.Group("/v1")

	g.GET("/currency", h.GETCurrency)
	g.PUT("/currency", h.PUTCurrency)
	g.GET("/rates/:coin", h.GETRate)
	g.GET("/wallets", h.GETWallets)
	g.GET("/wallets/:coin", h.GETWallet)
	g.GET("/wallets/:coin/address", h.GETReceiveAddress)
	g.GET("/wallets/:coin/transactions", h.GETTransactions)
	g.POST("/wallets/:coin/fee", h.POSTFee)
	g.POST("/wallets/:coin/send", h.POSTSend)
	g.POST("/wallets/:coin/validate", h.POSTValidate)
	g.GET("/addresses/:address/title", h.GETAddressTitle)
}

func (h *Handler) GETCurrency(c echo.Context) error {
	return c.JSON(http.StatusOK, CurrencyResponse{
		Base:       h.currencies.BaseCurrency(),
		Currencies: h.currencies.Currencies(),
	})
}

func (h *Handler) PUTCurrency(c echo.Context) error {
	var req CurrencyRequest
	if err := c.Bind(&req); err != nil {
		return h.errorResponse(c, http.StatusBadRequest, err)
	}

	err := h.currencies.SetBaseCurrency(req.Code)
	if err != nil {
		return h.handleError(c, err)
	}

	return h.GETCurrency(c)
}

func (h *Handler) GETRate(c echo.Context) error {
	cn, err := coin.Parse(c.Param("coin"))
	if err != nil {
		return h.handleError(c, err)
	}

	r := h.rates.Rate(cn, h.currencies.BaseCurrency().Code)
	if r == nil {
		return h.errorResponse(c, http.StatusNotFound, ErrRateNotAvailable)
	}

	return c.JSON(http.StatusOK, r)
}

func walletResponse(a *adapter.Adapter) WalletResponse {
	state := a.State()

	return WalletResponse{
		Coin:                   a.Coin(),
		State:                  state.Kind.String(),
		Progress:               state.Progress,
		Balance:                a.Balance(),
		LastBlockHeight:        a.LastBlockHeight(),
		ConfirmationsThreshold: a.ConfirmationsThreshold(),
		Decimal:                a.Decimal(),
	}
}

func (h *Handler) GETWallets(c echo.Context) error {
	coins := h.wallets.Coins()
	wallets := make([]WalletResponse, 0, len(coins))

	for _, cn := range coins {
		a, err := h.wallets.Adapter(cn)
		if err != nil {
			return h.handleError(c, err)
		}
		wallets = append(wallets, walletResponse(a))
	}

	return c.JSON(http.StatusOK, wallets)
}

func (h *Handler) adapter(c echo.Context) (*adapter.Adapter, error) {
	cn, err := coin.Parse(c.Param("coin"))
	if err != nil {
		return nil, err
	}

	return h.wallets.Adapter(cn)
}

func (h *Handler) GETWallet(c echo.Context) error {
	a, err := h.adapter(c)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, walletResponse(a))
}

func (h *Handler) GETReceiveAddress(c echo.Context) error {
	a, err := h.adapter(c)
	if err != nil {
		return h.handleError(c, err)
	}

	address, err := a.ReceiveAddress(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, AddressResponse{Address: address})
}

func (h *Handler) GETTransactions(c echo.Context) error {
	a, err := h.adapter(c)
	if err != nil {
		return h.handleError(c, err)
	}

	var fromHash *string
	if from := c.QueryParam("from"); from != "" {
		fromHash = &from
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return h.errorResponse(c, http.StatusBadRequest, errors.Join(adapter.ErrInvalidLimit, err))
		}
	}

	ctx := c.Request().Context()
	records, err := a.Transactions(ctx, fromHash, limit)
	if err != nil {
		return h.handleError(c, err)
	}

	lastBlockHeight := a.LastBlockHeight()
	baseCurrency := h.currencies.BaseCurrency().Code
	response := make([]TransactionResponse, 0, len(records))
	for _, record := range records {
		if h.records != nil && record.Rate == nil {
			stored, getErr := h.records.Get(ctx, record.Coin, record.Hash)
			if getErr == nil {
				// a rate of the previous base currency is hidden until it is refilled
				if rate := stored.RateIn(baseCurrency); rate != nil {
					record.Rate = rate
					record.RateCurrency = baseCurrency
				}
			} else if !errors.Is(getErr, store.ErrNotFound) {
				h.logger.Warn("Failed to read stored record", slog.String("hash", record.Hash), slog.String("err", getErr.Error()))
			}
		}

		response = append(response, TransactionResponse{
			TransactionRecord: record,
			Confirmations:     record.Confirmations(lastBlockHeight),
			From:              h.addresses(record.From),
			To:                h.addresses(record.To),
		})
	}

	return c.JSON(http.StatusOK, response)
}

func (h *Handler) addresses(addresses []txrecord.TransactionAddress) []AddressTitle {
	result := make([]AddressTitle, len(addresses))
	for i, address := range addresses {
		result[i] = AddressTitle{Address: address.Address, Mine: address.Mine, Title: h.titles.Map(address.Address)}
	}

	return result
}

func (h *Handler) POSTFee(c echo.Context) error {
	a, err := h.adapter(c)
	if err != nil {
		return h.handleError(c, err)
	}

	var req FeeRequest
	if err = c.Bind(&req); err != nil {
		return h.errorResponse(c, http.StatusBadRequest, err)
	}

	fee, err := a.Fee(c.Request().Context(), req.Amount, req.Address, req.SenderPaysFee)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, FeeResponse{Fee: fee})
}

func (h *Handler) POSTSend(c echo.Context) error {
	a, err := h.adapter(c)
	if err != nil {
		return h.handleError(c, err)
	}

	var req SendRequest
	if err = c.Bind(&req); err != nil {
		return h.errorResponse(c, http.StatusBadRequest, err)
	}

	payment := a.ParsePaymentAddress(req.Address)
	amount := req.Amount
	if amount.IsZero() && payment.Amount != nil {
		amount = *payment.Amount
	}

	ctx := c.Request().Context()
	err = a.ValidateAddress(ctx, payment.Address)
	if err != nil {
		return h.handleError(c, err)
	}

	err = a.Send(ctx, payment.Address, amount)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, SendResponse{Address: payment.Address, Amount: amount})
}

func (h *Handler) POSTValidate(c echo.Context) error {
	a, err := h.adapter(c)
	if err != nil {
		return h.handleError(c, err)
	}

	var req ValidateRequest
	if err = c.Bind(&req); err != nil {
		return h.errorResponse(c, http.StatusBadRequest, err)
	}

	payment := a.ParsePaymentAddress(req.Address)
	err = a.ValidateAddress(c.Request().Context(), payment.Address)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, payment)
}

func (h *Handler) GETAddressTitle(c echo.Context) error {
	address := c.Param("address")
	return c.JSON(http.StatusOK, AddressTitle{Address: address, Title: h.titles.Map(address)})
}

func (h *Handler) handleError(c echo.Context, err error) error {
	var insufficient *adapter.InsufficientFundsError
	if errors.As(err, &insufficient) {
		maxFee := insufficient.MaxFee
		return c.JSON(http.StatusPaymentRequired, ErrorResponse{Error: err.Error(), MaxFee: &maxFee})
	}

	switch {
	case errors.Is(err, coin.ErrUnknownCoin), errors.Is(err, wallet.ErrWalletNotFound):
		return h.errorResponse(c, http.StatusNotFound, err)
	case errors.Is(err, adapter.ErrValidationFailed),
		errors.Is(err, adapter.ErrInvalidAmount),
		errors.Is(err, adapter.ErrInvalidLimit),
		errors.Is(err, currency.ErrUnknownCurrency):
		return h.errorResponse(c, http.StatusBadRequest, err)
	}

	h.logger.Error("Request failed", slog.String("path", c.Path()), slog.String("err", err.Error()))
	return h.errorResponse(c, http.StatusInternalServerError, err)
}

func (h *Handler) errorResponse(c echo.Context, status int, err error) error {
	return c.JSON(status, ErrorResponse{Error: err.Error()})
}
