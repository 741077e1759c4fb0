package metaclient

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-control-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-control-api/internal/config"
	"github.com/vfg2006/ad-control-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// maxPages limita a paginação de um edge para não seguir cursores indefinidamente
	maxPages = 50

	pageSize = "200"
)

// MetaClient fala com a Graph API usando um access token estático
type MetaClient struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

func NewClient(cfg config.Meta, httpClient *http.Client) *MetaClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	if cfg.RequestTimeout > 0 {
		httpClient.Timeout = cfg.RequestTimeout
	}

	return &MetaClient{
		baseURL:     strings.TrimRight(cfg.URL, "/"),
		accessToken: cfg.AccessToken,
		httpClient:  httpClient,
	}
}

func (c *MetaClient) Mode() string {
	return config.ModeLive
}

// accountPath garante o prefixo act_ exigido pelos edges de conta
func accountPath(accountID string) string {
	if strings.HasPrefix(accountID, "act_") {
		return accountID
	}
	return "act_" + accountID
}

func (c *MetaClient) get(ctx context.Context, op, path string, params url.Values, out any) error {
	endpoint := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	return c.doRequest(ctx, op, http.MethodGet, endpoint, nil, out)
}

func (c *MetaClient) post(ctx context.Context, op, path string, form url.Values, out any) error {
	endpoint := c.baseURL + "/" + strings.TrimLeft(path, "/")
	return c.doRequest(ctx, op, http.MethodPost, endpoint, form, out)
}

func (c *MetaClient) doRequest(ctx context.Context, op, method, endpoint string, form url.Values, out any) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return &domain.RemoteError{Op: op, Err: errors.Wrap(err, "erro ao criar a requisição")}
	}

	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"operation": op,
			"elapsed":   time.Since(started).String(),
		}).WithError(err).Error("Erro ao fazer a requisição para a Graph API")
		return transportError(op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(op, errors.Wrap(err, "erro ao ler resposta"))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return responseError(op, resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		logrus.WithField("operation", op).WithError(err).Error("Erro ao decodificar JSON")
		return &domain.RemoteError{Op: op, StatusCode: resp.StatusCode, Err: errors.Wrap(err, "resposta inválida da Graph API")}
	}

	return nil
}

// transportError classifica falhas de rede. Timeouts carregam domain.ErrTimeout.
func transportError(op string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &domain.RemoteError{Op: op, Retryable: true, Err: errors.Wrap(domain.ErrTimeout, err.Error())}
	}

	if errors.Is(err, context.Canceled) {
		return &domain.RemoteError{Op: op, Err: err}
	}

	return &domain.RemoteError{Op: op, Retryable: true, Err: err}
}

var errObjectNotFound = errors.New("objeto inexistente na Graph API")

// asNotFound converte o erro de objeto inexistente em domain.NotFoundError com o recurso da operação
func asNotFound(err error, resource, id string) error {
	if errors.Is(err, errObjectNotFound) {
		return domain.NewNotFoundError(resource, id)
	}
	return err
}

func responseError(op string, status int, raw []byte) error {
	remoteErr := &domain.RemoteError{
		Op:         op,
		StatusCode: status,
		Retryable:  status >= http.StatusInternalServerError || status == http.StatusTooManyRequests,
	}

	var graphErr metadomain.ErrorResponse
	if err := json.Unmarshal(raw, &graphErr); err != nil || graphErr.Error.Message == "" {
		remoteErr.Err = errors.Errorf("Graph API respondeu %d", status)
		return remoteErr
	}

	if graphErr.IsRetryable() {
		remoteErr.Retryable = true
	}

	if graphErr.IsObjectNotFound() {
		remoteErr.Err = errors.Wrapf(errObjectNotFound, "%s (code %d, subcode %d)", graphErr.Error.Message, graphErr.Error.Code, graphErr.Error.ErrorSubcode)
		return remoteErr
	}

	if graphErr.IsTokenExpired() {
		logrus.WithField("operation", op).Warn("Access token da Graph API inválido ou expirado")
	}

	remoteErr.Err = errors.Errorf("%s (code %d, type %s)", graphErr.Error.Message, graphErr.Error.Code, graphErr.Error.Type)
	return remoteErr
}

// listAll segue paging.next até o fim do edge
func listAll[T any](ctx context.Context, c *MetaClient, op, path string, params url.Values) ([]T, error) {
	var page metadomain.ListResponse[T]
	if err := c.get(ctx, op, path, params, &page); err != nil {
		return nil, err
	}

	items := append(make([]T, 0, len(page.Data)), page.Data...)

	for pages := 1; page.Paging.Next != "" && pages < maxPages; pages++ {
		next := page.Paging.Next
		page = metadomain.ListResponse[T]{}

		if err := c.doRequest(ctx, op, http.MethodGet, next, nil, &page); err != nil {
			return nil, err
		}
		items = append(items, page.Data...)
	}

	return items, nil
}
