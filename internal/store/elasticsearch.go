// internal/store/elasticsearch.go
package store

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8"

	"matching-engine/internal/common/errors"
	"matching-engine/internal/common/logger"
	"matching-engine/internal/models"
)

var errDocNotFound = stderrors.New("document not found")

// ElasticsearchStore reads candidate and job documents from dedicated
// indices, one document per record keyed by its ID.
type ElasticsearchStore struct {
	es             *elasticsearch.Client
	candidateIndex string
	jobIndex       string
	logger         logger.Logger
}

func NewElasticsearchStore(es *elasticsearch.Client, candidateIndex, jobIndex string, log logger.Logger) *ElasticsearchStore {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &ElasticsearchStore{
		es:             es,
		candidateIndex: candidateIndex,
		jobIndex:       jobIndex,
		logger:         log,
	}
}

func (s *ElasticsearchStore) GetCandidate(ctx context.Context, candidateID string) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := s.getDocument(ctx, s.candidateIndex, candidateID, &candidate); err != nil {
		if stderrors.Is(err, errDocNotFound) {
			return nil, errors.NewCandidateNotFoundError(candidateID)
		}
		return nil, err
	}
	return &candidate, nil
}

func (s *ElasticsearchStore) GetJob(ctx context.Context, jobID string) (*models.Job, error) {
	var job models.Job
	if err := s.getDocument(ctx, s.jobIndex, jobID, &job); err != nil {
		if stderrors.Is(err, errDocNotFound) {
			return nil, errors.NewJobNotFoundError(jobID)
		}
		return nil, err
	}
	return &job, nil
}

func (s *ElasticsearchStore) getDocument(ctx context.Context, index, id string, out interface{}) error {
	res, err := s.es.Get(index, id, s.es.Get.WithContext(ctx))
	if err != nil {
		return errors.NewStoreUnavailableError(err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return errDocNotFound
	}
	if res.IsError() {
		s.logger.Warn("Elasticsearch get failed", map[string]interface{}{
			"index":  index,
			"id":     id,
			"status": res.Status(),
		})
		return errors.NewStoreUnavailableError(fmt.Errorf("elasticsearch get %s/%s: %s", index, id, res.Status()))
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.NewStoreUnavailableError(err)
	}

	var envelope struct {
		Found  bool            `json:"found"`
		Source json.RawMessage `json:"_source"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return errors.NewStoreUnavailableError(err)
	}
	if !envelope.Found {
		return errDocNotFound
	}
	if err := json.Unmarshal(envelope.Source, out); err != nil {
		return errors.NewStoreUnavailableError(err)
	}
	return nil
}
