package rpc

import (
	"fmt"
	"time"

	"ethabi/config"
	"ethabi/models"
	"ethabi/util/log"

	"github.com/valyala/fasthttp"
)

var (
	client = &fasthttp.Client{
		MaxConnWaitTimeout: 10 * time.Second,
		MaxConnsPerHost:    20,
	}

	retryDelay = 200 * time.Millisecond
)

// GetABI downloads and decodes the ABI document at url.
func GetABI(url string) (*models.ABI, error) {
	body, err := download(url)
	if err != nil {
		return nil, err
	}

	abi, err := models.ParseABIDocument(body)
	if err != nil {
		return nil, fmt.Errorf("invalid abi document from %s: %w", url, err)
	}

	return abi, nil
}

// download fetches url, retrying transport failures.
func download(url string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.Header.SetMethod("GET")
	req.SetRequestURI(url)

	var (
		retries = config.GetRPCRetries()
		err     error
	)

	for attempt := 1; attempt <= retries; attempt++ {
		err = client.DoTimeout(req, resp, config.GetRPCTimeout())
		if err == nil {
			break
		}

		log.Warnf("Failed to download abi from %s (attempt %d/%d): %v", url, attempt, retries, err)
		if attempt < retries {
			time.Sleep(time.Duration(attempt) * retryDelay)
		}
	}

	if err != nil {
		return nil, err
	}

	if code := resp.StatusCode(); code != fasthttp.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", code, url)
	}

	body := append([]byte(nil), resp.Body()...)
	log.Debugf("Downloaded %d bytes of abi from %s", len(body), url)

	return body, nil
}
