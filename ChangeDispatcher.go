package main

import (
	"bytes"
	"hash/fnv"
	"net/http"
	"strings"
	"sync"
	"tabularDataEditor/contracts"
	"time"

	json "github.com/bytedance/sonic"
	"github.com/sirupsen/logrus"
)

const DefaultWebhookWorkersCount = 5

type WebhookSendCommand struct {
	Webhook string
	Payload []byte
}

const webhookQueueSize = 20

// ChangeDispatcher fans change events out to websocket subscribers and to the
// webhook registered for the document. Webhooks are posted by a worker pool; all
// events of one document go through the same worker, so they arrive in order.
type ChangeDispatcher struct {
	mu       sync.RWMutex
	closed   bool
	queues   []chan WebhookSendCommand
	webhooks map[string]string

	broadcaster  contracts.ChangeBroadcaster
	workersCount int
	client       *http.Client
	logger       *logrus.Entry
	workers      sync.WaitGroup
}

func NewChangeDispatcher(broadcaster contracts.ChangeBroadcaster, workersCount int, logger *logrus.Entry) *ChangeDispatcher {
	if workersCount <= 0 {
		workersCount = DefaultWebhookWorkersCount
	}

	queues := make([]chan WebhookSendCommand, workersCount)
	for i := range queues {
		queues[i] = make(chan WebhookSendCommand, webhookQueueSize)
	}

	return &ChangeDispatcher{
		queues:       queues,
		webhooks:     map[string]string{},
		broadcaster:  broadcaster,
		workersCount: workersCount,
		client: &http.Client{
			Timeout: time.Second * 5,
		},
		logger: logger.WithField("component", "change_dispatcher"),
	}
}

func (d *ChangeDispatcher) SetWebhookUrl(documentId string, webhookUrl string) {
	documentId = strings.ToLower(documentId)

	d.mu.Lock()
	defer d.mu.Unlock()

	if webhookUrl == "" {
		delete(d.webhooks, documentId)
	} else {
		d.webhooks[documentId] = webhookUrl
	}
}

func (d *ChangeDispatcher) GetWebhookUrl(documentId string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.webhooks[strings.ToLower(documentId)]
}

func (d *ChangeDispatcher) Notify(event contracts.ChangeEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		d.logger.WithError(err).WithField("document", event.DocumentId).Error("change event marshal failed")
		return
	}

	if d.broadcaster != nil {
		d.broadcaster.Broadcast(event.DocumentId, payload)
	}

	if webhook := d.GetWebhookUrl(event.DocumentId); webhook != "" {
		d.addToQueue(event.DocumentId, WebhookSendCommand{Webhook: webhook, Payload: payload})
	}
}

// addToQueue blocks while the document's queue is full.
func (d *ChangeDispatcher) addToQueue(documentId string, command WebhookSendCommand) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if !d.closed {
		d.queueFor(documentId) <- command
	}
}

func (d *ChangeDispatcher) queueFor(documentId string) chan WebhookSendCommand {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(strings.ToLower(documentId)))
	return d.queues[hash.Sum32()%uint32(len(d.queues))]
}

func (d *ChangeDispatcher) Start() {
	for _, queue := range d.queues {
		d.workers.Add(1)
		go d.runWebhookSenderWorker(queue)
	}
}

// Close stops accepting webhooks and waits for the queued ones to be sent.
func (d *ChangeDispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		for _, queue := range d.queues {
			close(queue)
		}
	}
	d.mu.Unlock()

	d.workers.Wait()
}

func (d *ChangeDispatcher) runWebhookSenderWorker(queue <-chan WebhookSendCommand) {
	defer d.workers.Done()

	for command := range queue {
		response, err := d.client.Post(command.Webhook, "application/json", bytes.NewBuffer(command.Payload))

		if err != nil {
			d.logger.WithError(err).WithField("webhook", command.Webhook).Warn("webhook send error")
			continue
		}

		response.Body.Close()
		if response.StatusCode >= 300 {
			d.logger.WithField("webhook", command.Webhook).Warnf("unexpected webhook response HTTP status: %s", response.Status)
		}
	}
}
