package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/jakechorley/vacation-probe/pkg/clients/vacationsclient"
	"github.com/jakechorley/vacation-probe/pkg/core/model"
)

// ErrInvalidJSON is returned when a response body cannot be parsed as JSON
var ErrInvalidJSON = errors.New("response is not valid JSON")

const ruleWidth = 50

// VacationCreator creates vacation records
type VacationCreator interface {
	CollectionURL() string
	Create(ctx context.Context, record model.VacationRecord) (*vacationsclient.Response, error)
}

// VacationLister lists vacation records
type VacationLister interface {
	CollectionURL() string
	List(ctx context.Context) (*vacationsclient.Response, error)
}

// VacationDeleter deletes vacation records
type VacationDeleter interface {
	RecordURL(id string) string
	Delete(ctx context.Context, id string) (*vacationsclient.Response, error)
}

// VacationsClient is everything the probe calls
type VacationsClient interface {
	VacationCreator
	VacationLister
}

// OperationResult is the outcome of one call. StatusCode is 0 when no response arrived.
type OperationResult struct {
	StatusCode int
	Err        error
}

// ProbeResult holds both operations of a probe run
type ProbeResult struct {
	Create OperationResult
	List   OperationResult
}

// Failures counts the operations that reported an error
func (r *ProbeResult) Failures() int {
	failures := 0
	for _, op := range []OperationResult{r.Create, r.List} {
		if op.Err != nil {
			failures++
		}
	}
	return failures
}

// ProbeVacations posts record to the collection and then lists the collection.
// Each step reports its own failure and the list step always runs.
// Nothing about the responses is asserted.
func ProbeVacations(ctx context.Context, client VacationsClient, out io.Writer, logger *zap.Logger, record model.VacationRecord) *ProbeResult {
	logger.Info("Probing vacations API", zap.String("url", client.CollectionURL()))

	result := &ProbeResult{}
	result.Create = CreateVacation(ctx, client, out, logger, record)

	fmt.Fprintln(out)
	fmt.Fprintln(out, strings.Repeat("=", ruleWidth))

	result.List = ListVacations(ctx, client, out, logger)

	logger.Info("Probe finished",
		zap.Int("create_status", result.Create.StatusCode),
		zap.Int("list_status", result.List.StatusCode),
		zap.Int("failures", result.Failures()))

	return result
}

// CreateVacation posts a single record and prints the request and response
func CreateVacation(ctx context.Context, client VacationCreator, out io.Writer, logger *zap.Logger, record model.VacationRecord) OperationResult {
	target := client.CollectionURL()

	fmt.Fprintf(out, "Testing POST %s\n", urlPath(target))
	fmt.Fprintf(out, "URL: %s\n", target)

	payload, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return reportFailure(out, logger, 0, fmt.Errorf("failed to encode vacation record: %w", err))
	}
	fmt.Fprintf(out, "Body: %s\n", payload)
	fmt.Fprintln(out, strings.Repeat("-", ruleWidth))

	resp, err := client.Create(ctx, record)
	if err != nil {
		return reportFailure(out, logger, 0, err)
	}

	fmt.Fprintf(out, "Status Code: %d\n", resp.StatusCode)
	fmt.Fprintf(out, "Response: %s\n", resp.Body)

	return printJSONBody(out, logger, resp)
}

// ListVacations fetches the collection and prints the response
func ListVacations(ctx context.Context, client VacationLister, out io.Writer, logger *zap.Logger) OperationResult {
	target := client.CollectionURL()

	fmt.Fprintf(out, "Testing GET %s\n", urlPath(target))
	fmt.Fprintln(out, strings.Repeat("-", ruleWidth))

	resp, err := client.List(ctx)
	if err != nil {
		return reportFailure(out, logger, 0, err)
	}

	fmt.Fprintf(out, "Status Code: %d\n", resp.StatusCode)

	return printJSONBody(out, logger, resp)
}

// DeleteVacation deletes one record by id and prints the response
func DeleteVacation(ctx context.Context, client VacationDeleter, out io.Writer, logger *zap.Logger, id string) OperationResult {
	target := client.RecordURL(id)

	fmt.Fprintf(out, "Testing DELETE %s\n", urlPath(target))
	fmt.Fprintln(out, strings.Repeat("-", ruleWidth))

	resp, err := client.Delete(ctx, id)
	if err != nil {
		return reportFailure(out, logger, 0, err)
	}

	fmt.Fprintf(out, "Status Code: %d\n", resp.StatusCode)

	return printJSONBody(out, logger, resp)
}

// PrintSample writes the indented record without sending it anywhere
func PrintSample(out io.Writer, record model.VacationRecord) error {
	payload, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode vacation record: %w", err)
	}
	fmt.Fprintf(out, "%s\n", payload)
	return nil
}

func printJSONBody(out io.Writer, logger *zap.Logger, resp *vacationsclient.Response) OperationResult {
	pretty, err := indentJSON(resp.Body)
	if err != nil {
		return reportFailure(out, logger, resp.StatusCode, err)
	}

	fmt.Fprintf(out, "JSON: %s\n", pretty)
	return OperationResult{StatusCode: resp.StatusCode}
}

// reportFailure prints the single error line for an operation
func reportFailure(out io.Writer, logger *zap.Logger, statusCode int, err error) OperationResult {
	logger.Debug("Operation failed", zap.Int("status", statusCode), zap.Error(err))
	fmt.Fprintf(out, "Error: %v\n", err)
	return OperationResult{StatusCode: statusCode, Err: err}
}

// indentJSON validates body and re-indents it with two spaces, keeping key order
func indentJSON(body []byte) ([]byte, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrInvalidJSON)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidJSON, truncate(body, 80))
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return buf.Bytes(), nil
}

func truncate(body []byte, limit int) string {
	if len(body) <= limit {
		return string(body)
	}
	return string(body[:limit]) + "..."
}

// urlPath returns the escaped path part of target, or target itself when it does not parse
func urlPath(target string) string {
	u, err := url.Parse(target)
	if err != nil || u.Path == "" {
		return target
	}
	return u.EscapedPath()
}
