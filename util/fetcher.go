// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// StatusError - non 200 reply from a JSON endpoint
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status: %d %q on: %q", e.StatusCode, e.Status, e.URL)
}

// PostJSON - POST a JSON encoded request and decode the JSON response
// into reply
func PostJSON(client *http.Client, url string, request interface{}, reply interface{}) error {
	body, err := json.Marshal(request)
	if nil != err {
		return err
	}

	httpRequest, err := http.NewRequest("POST", url, bytes.NewReader(body))
	if nil != err {
		return err
	}
	httpRequest.Header.Set("Content-Type", "application/json")

	response, err := client.Do(httpRequest)
	if nil != err {
		return err
	}
	defer response.Body.Close()
	responseBody, err := io.ReadAll(response.Body)
	if nil != err {
		return err
	}

	if http.StatusOK != response.StatusCode {
		return &StatusError{
			StatusCode: response.StatusCode,
			Status:     response.Status,
			URL:        url,
		}
	}
	return json.Unmarshal(responseBody, reply)
}
