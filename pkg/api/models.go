package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	// Packages
	client "github.com/mutablelogic/go-subtitle/pkg/client"
	gowhisper "github.com/mutablelogic/go-subtitle/pkg/client/gowhisper"
	schema "github.com/mutablelogic/go-subtitle/pkg/schema"
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type respModels struct {
	Object string         `json:"object,omitempty"`
	Models []schema.Model `json:"models"`
}

type reqDownloadModel struct {
	Path string `json:"path"`
}

type queryDownloadModel struct {
	Stream bool `json:"stream"`
}

type respDownloadModelStatus struct {
	Status    string `json:"status"`
	Total     uint64 `json:"total,omitempty"`
	Completed uint64 `json:"completed,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func ListModels(w http.ResponseWriter, r *http.Request, service *client.Client) error {
	models, err := service.ListModels(r.Context())
	if err != nil {
		return httpresponse.Error(w, httpresponse.ErrGatewayError, err.Error())
	}
	return httpresponse.JSON(w, http.StatusOK, 2, respModels{
		Object: "list",
		Models: models,
	})
}

func DownloadModel(w http.ResponseWriter, r *http.Request, service *client.Client) error {
	// Get query
	var query queryDownloadModel
	if err := httprequest.Query(r.URL.Query(), &query); err != nil {
		return httpresponse.Error(w, httpresponse.ErrBadRequest, err.Error())
	}

	// Create a text stream
	var stream *httpresponse.TextStream
	if query.Stream {
		if stream = httpresponse.NewTextStream(w); stream == nil {
			return httpresponse.Error(w, httpresponse.ErrInternalError, "Cannot create text stream")
		}
		defer stream.Close()
	}

	// Get the body
	var req reqDownloadModel
	if err := httprequest.Read(r, &req); err != nil {
		if stream != nil {
			stream.Write(gowhisper.DownloadStreamErrorType, err.Error())
			return nil
		}
		return httpresponse.Error(w, httpresponse.ErrBadRequest, err.Error())
	} else if err := req.Validate(); err != nil {
		if stream != nil {
			stream.Write(gowhisper.DownloadStreamErrorType, err.Error())
			return nil
		}
		return httpresponse.Error(w, httpresponse.ErrBadRequest, err.Error())
	}

	// Download the model, reporting progress at most once a second
	t := time.Now()
	model, err := service.DownloadModel(r.Context(), req.Path, func(cur, total uint64) {
		if time.Since(t) > time.Second && stream != nil {
			t = time.Now()
			stream.Write(gowhisper.DownloadStreamProgressType, respDownloadModelStatus{
				Status:    fmt.Sprint("downloading ", req.Path),
				Total:     total,
				Completed: cur,
			})
		}
	})
	if err != nil {
		if stream != nil {
			stream.Write(gowhisper.DownloadStreamErrorType, err.Error())
			return nil
		}
		return httpresponse.Error(w, httpresponse.ErrGatewayError, err.Error())
	}

	// Return the model information
	if stream != nil {
		stream.Write(gowhisper.DownloadStreamDoneType, model)
		return nil
	}
	return httpresponse.JSON(w, http.StatusCreated, 2, model)
}

func DeleteModelById(w http.ResponseWriter, r *http.Request, service *client.Client, id string) error {
	if err := service.DeleteModel(r.Context(), id); err != nil {
		return httpresponse.Error(w, httpresponse.ErrGatewayError, err.Error())
	}
	return httpresponse.Empty(w, http.StatusOK)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (r reqDownloadModel) Validate() error {
	if r.Path == "" {
		return errors.New("missing path")
	}
	return nil
}
