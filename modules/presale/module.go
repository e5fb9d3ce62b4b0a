package presale

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/presale-ledger/common/errs"
	"github.com/gaze-network/presale-ledger/internal/config"
	"github.com/gaze-network/presale-ledger/internal/postgres"
	"github.com/gaze-network/presale-ledger/modules/presale/api/httphandler"
	presaleconfig "github.com/gaze-network/presale-ledger/modules/presale/config"
	"github.com/gaze-network/presale-ledger/modules/presale/custody"
	"github.com/gaze-network/presale-ledger/modules/presale/datagateway"
	"github.com/gaze-network/presale-ledger/modules/presale/notifier"
	"github.com/gaze-network/presale-ledger/modules/presale/pricefeed"
	repository "github.com/gaze-network/presale-ledger/modules/presale/repository/postgres"
	"github.com/gaze-network/presale-ledger/modules/presale/snapshot"
	"github.com/gaze-network/presale-ledger/pkg/logger"
	"github.com/gaze-network/presale-ledger/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
	"github.com/holiman/uint256"
	"github.com/samber/do/v2"
)

// New wires a presale from the application config: price feed, local custody, event sinks,
// the HTTP API and the snapshot worker.
func New(injector do.Injector) (*Worker, error) {
	ctx := do.MustInvoke[context.Context](injector)
	conf := do.MustInvoke[config.Config](injector).Presale

	var cleanupFuncs []func(context.Context) error
	cleanup := func() {
		for _, fn := range cleanupFuncs {
			_ = fn(ctx)
		}
	}

	feed, err := newPriceFeed(conf.PriceFeed)
	if err != nil {
		return nil, errors.Wrap(err, "can't create price feed")
	}

	vault := custody.New()
	if err := seedCustody(vault, conf.Custody); err != nil {
		return nil, errors.Wrap(err, "invalid custody balances")
	}

	sinks := notifier.Multi{notifier.LogSink{}}
	var eventLog datagateway.PresaleDataGateway
	if conf.EventLog.Postgres.Enabled {
		pg, err := postgres.NewPool(ctx, conf.EventLog.Postgres.Config)
		if err != nil {
			return nil, errors.Wrap(err, "can't create postgres connection pool")
		}
		cleanupFuncs = append(cleanupFuncs, func(context.Context) error {
			pg.Close()
			return nil
		})
		repo := repository.NewRepository(pg)
		eventLog = repo
		sinks = append(sinks, notifier.NewStoreSink(repo))
	}
	if conf.EventLog.Redis.Enabled {
		rdb, err := notifier.NewRedisClient(ctx, conf.EventLog.Redis.Config)
		if err != nil {
			cleanup()
			return nil, errors.WithStack(err)
		}
		cleanupFuncs = append(cleanupFuncs, func(context.Context) error {
			return errors.WithStack(rdb.Close())
		})
		sinks = append(sinks, notifier.NewRedisSink(rdb, conf.EventLog.Redis.Config.Channel))
	}

	params, err := newParams(conf, feed, vault)
	if err != nil {
		cleanup()
		return nil, errors.WithStack(err)
	}
	opts := []Option{
		WithEventSink(sinks),
		WithStrictStageExtension(conf.StageExtension.Strict),
	}
	if conf.PriceFeed.MaxAge != nil {
		opts = append(opts, WithPriceMaxAge(*conf.PriceFeed.MaxAge))
	}
	p, err := NewPresale(ctx, params, opts...)
	if err != nil {
		cleanup()
		return nil, errors.Wrap(err, "can't create presale")
	}

	httpServer := do.MustInvoke[*fiber.App](injector)
	presaleHandler := httphandler.New(p, eventLog)
	if conf.API.EnableWrites {
		presaleHandler.WithOperator(p)
	}
	if err := presaleHandler.Mount(httpServer); err != nil {
		cleanup()
		return nil, errors.Wrap(err, "can't mount presale API")
	}
	logger.InfoContext(ctx, "Mounted presale HTTP handler", slogx.Bool("writes", conf.API.EnableWrites))

	var exporter Exporter
	if conf.Snapshot.Enabled {
		store, err := snapshot.NewS3Store(ctx, conf.Snapshot.S3)
		if err != nil {
			cleanup()
			return nil, errors.Wrap(err, "can't create snapshot store")
		}
		exporter = snapshot.NewExporter(p, store, conf.Snapshot.S3.Prefix)
	}

	logger.InfoContext(ctx, "Presale module started.", slogx.String("version", Version))
	return NewWorker(p, exporter, conf.Snapshot.Interval, cleanupFuncs...), nil
}

func newPriceFeed(conf presaleconfig.PriceFeed) (PriceFeed, error) {
	switch conf.Type {
	case "", "static":
		feed, err := pricefeed.NewStaticFromString(conf.StaticPrice, FeedDecimals)
		return feed, errors.WithStack(err)
	case "http":
		feed, err := pricefeed.NewHTTPFeed(conf.HTTP, FeedDecimals)
		return feed, errors.WithStack(err)
	}
	return nil, errors.Wrapf(errs.Unsupported, "price feed type %q", conf.Type)
}

func parseAddress(field, s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, errors.Wrapf(errs.InvalidArgument, "%s: invalid address %q", field, s)
	}
	return common.HexToAddress(s), nil
}

func newParams(conf presaleconfig.Config, feed PriceFeed, vault Vault) (Params, error) {
	params := Params{PriceFeed: feed, Vault: vault}
	for _, f := range []struct {
		name string
		raw  string
		dst  *common.Address
	}{
		{"presale.address", conf.Address, &params.Address},
		{"presale.owner", conf.Owner, &params.Owner},
		{"presale.treasury", conf.Treasury, &params.Treasury},
		{"presale.stable_a.token", conf.StableA.Token, &params.StableA.Token},
		{"presale.stable_b.token", conf.StableB.Token, &params.StableB.Token},
	} {
		addr, err := parseAddress(f.name, f.raw)
		if err != nil {
			return Params{}, err
		}
		*f.dst = addr
	}
	params.StableA.Symbol, params.StableA.Decimals = conf.StableA.Symbol, UnitDecimals
	params.StableB.Symbol, params.StableB.Decimals = conf.StableB.Symbol, UnitDecimals
	return params, nil
}

func seedCustody(vault *custody.Vault, conf presaleconfig.Custody) error {
	for i, b := range conf.Balances {
		token := NativeCurrency
		if b.Token != "" {
			t, err := parseAddress("presale.custody.balances.token", b.Token)
			if err != nil {
				return errors.Wrapf(err, "balance %d", i)
			}
			token = t
		}
		holder, err := parseAddress("presale.custody.balances.holder", b.Holder)
		if err != nil {
			return errors.Wrapf(err, "balance %d", i)
		}
		amount, err := uint256.FromDecimal(b.Amount)
		if err != nil {
			return errors.Wrapf(errs.InvalidArgument, "balance %d: invalid amount %q", i, b.Amount)
		}
		vault.Mint(token, holder, amount)
	}
	return nil
}

var (
	_ Exporter             = (*snapshot.Exporter)(nil)
	_ httphandler.Ledger   = (*Presale)(nil)
	_ httphandler.Operator = (*Presale)(nil)
	_ EventSink            = notifier.Multi(nil)
)
