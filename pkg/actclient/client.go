// Package actclient talks to the activities daemon over HTTP.
package actclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mergington/activities/pkg/actmodel"
	"github.com/mergington/activities/pkg/stor"
	"github.com/mergington/activities/pkg/webapi"
)

var ErrActivitiesAPI = errors.New("activities api")

type Client struct {
	rc *resty.Client
}

func New(baseURL string) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10*time.Second).
		SetHeader("Accept", "application/json")
	return &Client{rc: rc}
}

func (c *Client) ListActivities() (map[string]actmodel.Activity, error) {
	var activities map[string]actmodel.Activity
	resp, err := c.rc.R().SetResult(&activities).Get("/activities")
	if err != nil {
		return nil, errors.Join(ErrActivitiesAPI, err)
	}

	if resp.IsError() {
		return nil, ToErrorFromResponse(resp)
	}

	for name, a := range activities {
		a.Name = name
		activities[name] = a
	}

	return activities, nil
}

// SignUp returns the server's confirmation message.
func (c *Client) SignUp(activityName, email string) (string, error) {
	return c.post(activityName, "signup", email)
}

func (c *Client) Unregister(activityName, email string) (string, error) {
	return c.post(activityName, "unregister", email)
}

func (c *Client) post(activityName, action, email string) (string, error) {
	var result struct {
		Message string `json:"message"`
	}

	resp, err := c.rc.R().
		SetQueryParam("email", email).
		SetResult(&result).
		Post(fmt.Sprintf("/activities/%s/%s", url.PathEscape(activityName), action))
	if err != nil {
		return "", errors.Join(ErrActivitiesAPI, err)
	}

	if resp.IsError() {
		return "", ToErrorFromResponse(resp)
	}

	return result.Message, nil
}

// ErrorResponse is the JSON the daemon responds with on failure.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ToErrorFromResponse turns a failed response into an error that wraps the
// matching catalog error when there is one, so callers can use errors.Is.
func ToErrorFromResponse(resp *resty.Response) error {
	var errorResponse ErrorResponse
	if err := json.Unmarshal(resp.Body(), &errorResponse); err != nil {
		return errors.Join(ErrActivitiesAPI, fmt.Errorf("(HTTP Status: %d) unable to parse json error response: %s", resp.StatusCode(), err))
	}

	apiErr := fmt.Errorf("(HTTP Status: %d) %s", resp.StatusCode(), errorResponse.Detail)

	switch {
	case resp.StatusCode() == http.StatusNotFound && errorResponse.Detail == webapi.DetailActivityNotFound:
		return errors.Join(ErrActivitiesAPI, stor.ErrActivityNotFound, apiErr)
	case resp.StatusCode() == http.StatusBadRequest && errorResponse.Detail == webapi.DetailAlreadyRegistered:
		return errors.Join(ErrActivitiesAPI, stor.ErrAlreadyRegistered, apiErr)
	case resp.StatusCode() == http.StatusBadRequest && errorResponse.Detail == webapi.DetailNotRegistered:
		return errors.Join(ErrActivitiesAPI, stor.ErrNotRegistered, apiErr)
	case resp.StatusCode() == http.StatusBadRequest && errorResponse.Detail == webapi.DetailCapacityExceeded:
		return errors.Join(ErrActivitiesAPI, stor.ErrCapacityExceeded, apiErr)
	default:
		return errors.Join(ErrActivitiesAPI, apiErr)
	}
}
