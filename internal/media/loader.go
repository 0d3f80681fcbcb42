package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/orgball2608/inline-bot-layout/internal/domain"
	"github.com/orgball2608/inline-bot-layout/internal/ratelimit"
	"github.com/orgball2608/inline-bot-layout/internal/telegram"
	"github.com/orgball2608/inline-bot-layout/pkg/config"
	"github.com/orgball2608/inline-bot-layout/pkg/errors"
	"github.com/orgball2608/inline-bot-layout/pkg/logger"
	"github.com/orgball2608/inline-bot-layout/pkg/retry"
	"go.uber.org/fx"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/singleflight"
)

// Dispatcher runs fn on the UI thread. Post reports false once the thread is gone.
type Dispatcher interface {
	Post(fn func()) bool
}

// Notifier is told about completed loads on the UI thread.
type Notifier interface {
	DocumentReady(doc domain.Document)
	ImageReady(img domain.Image)
}

type Opts struct {
	fx.In

	Config     *config.Config
	Logger     logger.Logger
	Dispatcher Dispatcher
	Notifier   Notifier
	Resolver   telegram.Client
	Limiter    ratelimit.Limiter `optional:"true"`
}

type Loader struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	client      *http.Client
	cache       *lru.Cache[string, []byte]
	group       singleflight.Group
	limiter     ratelimit.Limiter
	resolver    telegram.Client
	dispatcher  Dispatcher
	notifier    Notifier
	logger      logger.Logger
	retry       retry.Config
	userAgent   string
	mapTemplate string
}

var _ Requester = (*Loader)(nil)

func NewLoader(opts Opts) (*Loader, error) {
	cfg := opts.Config
	size := cfg.Loader.CacheSize
	if size <= 0 {
		size = 1
	}
	cache, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, errors.Wrap(err, "create loader cache")
	}

	limiter := opts.Limiter
	if limiter == nil {
		limiter = ratelimit.NewInMemoryLimiter(cfg.Loader.RequestsPerSecond, time.Second, cfg.Loader.Burst)
	}

	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = cfg.Loader.MaxRetries

	ctx, cancel := context.WithCancel(context.Background())
	return &Loader{
		ctx:         ctx,
		cancel:      cancel,
		client:      &http.Client{Timeout: cfg.Loader.Timeout},
		cache:       cache,
		limiter:     limiter,
		resolver:    opts.Resolver,
		dispatcher:  opts.Dispatcher,
		notifier:    opts.Notifier,
		logger:      opts.Logger.WithComponent("loader"),
		retry:       retryCfg,
		userAgent:   cfg.Loader.UserAgent,
		mapTemplate: cfg.Map.ThumbURLTemplate,
	}, nil
}

func (l *Loader) RequestImage(img *Image) {
	loc := img.location
	l.spawn(func() {
		pixels, err := l.fetchImage(l.ctx, loc)
		if err != nil {
			l.logger.Warn("Image load failed", "location", loc.Key(), "Error", err)
		}
		l.dispatcher.Post(func() {
			img.finish(pixels, err)
			if err != nil || l.notifier == nil {
				return
			}
			if img.owner != nil {
				l.notifier.DocumentReady(img.owner)
				return
			}
			l.notifier.ImageReady(img)
		})
	})
}

func (l *Loader) RequestDocument(doc *Document) {
	loc := doc.location
	l.spawn(func() {
		data, err := l.fetch(l.ctx, loc)
		if err != nil {
			l.logger.Warn("Document load failed", "location", loc.Key(), "Error", err)
		}
		l.dispatcher.Post(func() {
			doc.finish(data, err)
			if err != nil || l.notifier == nil {
				return
			}
			l.notifier.DocumentReady(doc)
		})
	})
}

// Close cancels in-flight downloads and waits for their goroutines.
func (l *Loader) Close() {
	l.cancel()
	l.wg.Wait()
}

func (l *Loader) spawn(fn func()) {
	if l.ctx.Err() != nil {
		return
	}
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		fn()
	}()
}

func (l *Loader) fetchImage(ctx context.Context, loc Location) (image.Image, error) {
	data, err := l.fetch(ctx, loc)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDecode, "decode "+loc.Key())
	}
	return img, nil
}

func (l *Loader) fetch(ctx context.Context, loc Location) ([]byte, error) {
	key := loc.Key()
	if data, ok := l.cache.Get(key); ok {
		return data, nil
	}

	v, err, _ := l.group.Do(key, func() (any, error) {
		target, err := l.resolve(loc)
		if err != nil {
			return nil, err
		}
		data, err := l.download(ctx, key, target)
		if err != nil {
			return nil, err
		}
		l.cache.Add(key, data)
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (l *Loader) resolve(loc Location) (string, error) {
	switch loc.Kind {
	case LocationURL:
		return loc.Value, nil
	case LocationTelegramFile:
		if l.resolver == nil {
			return "", errors.WrapWithCode(errors.ErrUnauthorized, errors.CodeResolve, "no telegram client")
		}
		return l.resolver.FileURL(loc.Value)
	case LocationGeo:
		if l.mapTemplate == "" {
			return "", errors.WrapWithCode(errors.ErrNotFound, errors.CodeResolve, "map thumbnails are disabled")
		}
		return fmt.Sprintf(l.mapTemplate, loc.Lat, loc.Lon), nil
	default:
		return "", errors.WrapWithCode(errors.ErrInvalidInput, errors.CodeResolve, "empty location")
	}
}

// download never puts target in errors or logs: telegram file urls carry the bot token.
func (l *Loader) download(ctx context.Context, name, target string) ([]byte, error) {
	u, err := url.Parse(target)
	if err != nil || u.Host == "" {
		return nil, errors.WrapWithCode(errors.ErrInvalidInput, errors.CodeFetch, "bad url for "+name)
	}
	if err := l.limiter.Wait(ctx, u.Host); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeFetch, "rate limit wait")
	}

	var data []byte
	err = retry.Do(ctx, l.logger, "fetch "+name, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return retry.Permanent(errors.WrapWithCode(err, errors.CodeFetch, "build request"))
		}
		if l.userAgent != "" {
			req.Header.Set("User-Agent", l.userAgent)
		}

		resp, err := l.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return retry.Permanent(ctx.Err())
			}
			return errors.WrapWithCode(errors.ErrServiceUnavailable, errors.CodeFetch, "request failed for "+name)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return retry.Permanent(errors.WrapWithCode(errors.ErrNotFound, errors.CodeFetch, name))
		case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
			return retry.Permanent(errors.WrapWithCode(errors.ErrUnauthorized, errors.CodeFetch, name))
		case resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests:
			return errors.WrapWithCode(errors.ErrServiceUnavailable, errors.CodeFetch, fmt.Sprintf("%s: %s", name, resp.Status))
		case resp.StatusCode < 200 || resp.StatusCode > 299:
			return retry.Permanent(errors.WrapWithCode(errors.ErrInvalidInput, errors.CodeFetch, fmt.Sprintf("%s: %s", name, resp.Status)))
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return errors.WrapWithCode(err, errors.CodeFetch, "read body of "+name)
		}
		if len(body) == 0 {
			return retry.Permanent(errors.WrapWithCode(errors.ErrNotFound, errors.CodeFetch, "empty body for "+name))
		}
		data = body
		return nil
	}, l.retry)
	if err != nil {
		return nil, err
	}
	return data, nil
}
