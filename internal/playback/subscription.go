package playback

const eventBufferSize = 16

// Subscription provides event channels for a subscriber.
type Subscription struct {
	StateChanged      <-chan StateChange
	TrackChanged      <-chan TrackChange
	QueueChanged      <-chan QueueChange
	ModeChanged       <-chan ModeChange
	CollectionChanged <-chan CollectionChange
	TransportChanged  <-chan TransportChange
	Error             <-chan ErrorEvent
	Done              <-chan struct{}

	// Internal write channels
	stateCh      chan StateChange
	trackCh      chan TrackChange
	queueCh      chan QueueChange
	modeCh       chan ModeChange
	collectionCh chan CollectionChange
	transportCh  chan TransportChange
	errorCh      chan ErrorEvent
	doneCh       chan struct{}
}

// newSubscription creates a new subscription with buffered channels.
func newSubscription() *Subscription {
	s := &Subscription{
		stateCh:      make(chan StateChange, eventBufferSize),
		trackCh:      make(chan TrackChange, eventBufferSize),
		queueCh:      make(chan QueueChange, eventBufferSize),
		modeCh:       make(chan ModeChange, eventBufferSize),
		collectionCh: make(chan CollectionChange, eventBufferSize),
		transportCh:  make(chan TransportChange, eventBufferSize),
		errorCh:      make(chan ErrorEvent, eventBufferSize),
		doneCh:       make(chan struct{}),
	}
	s.StateChanged = s.stateCh
	s.TrackChanged = s.trackCh
	s.QueueChanged = s.queueCh
	s.ModeChanged = s.modeCh
	s.CollectionChanged = s.collectionCh
	s.TransportChanged = s.transportCh
	s.Error = s.errorCh
	s.Done = s.doneCh
	return s
}

// close signals subscribers to stop by closing doneCh.
func (s *Subscription) close() {
	close(s.doneCh)
}

// send delivers e without blocking, dropping it if the buffer is full.
func send[E any](ch chan E, e E) {
	select {
	case ch <- e:
	default:
	}
}

func (s *Subscription) sendState(e StateChange)           { send(s.stateCh, e) }
func (s *Subscription) sendTrack(e TrackChange)           { send(s.trackCh, e) }
func (s *Subscription) sendQueue(e QueueChange)           { send(s.queueCh, e) }
func (s *Subscription) sendMode(e ModeChange)             { send(s.modeCh, e) }
func (s *Subscription) sendCollection(e CollectionChange) { send(s.collectionCh, e) }
func (s *Subscription) sendTransport(e TransportChange)   { send(s.transportCh, e) }
func (s *Subscription) sendError(e ErrorEvent)            { send(s.errorCh, e) }
