package game

// MessageKind tells the presentation layer which transient banner to show
type MessageKind int

const (
	MessageNone MessageKind = iota
	MessageScore
	MessageWinner
	MessagePrepare
)

// Message is the banner currently on display. Player is meaningful for
// MessageScore and MessageWinner only. Age counts seconds since it appeared.
type Message struct {
	Kind   MessageKind
	Player Player
	Age    float64
}

// Scoreboard keeps both scores, the winner and the transient banner.
// Once a winner is set further points are ignored until Reset.
type Scoreboard struct {
	scores    [2]int
	winner    Player
	hasWinner bool
	limit     int
	message   Message
}

// NewScoreboard creates an empty scoreboard for a match played to limit
func NewScoreboard(limit int) *Scoreboard {
	return &Scoreboard{limit: limit}
}

// Reset zeroes the scores, clears the winner and shows the "get ready" banner
func (s *Scoreboard) Reset() {
	s.scores = [2]int{}
	s.hasWinner = false
	s.winner = 0
	s.show(Message{Kind: MessagePrepare})
}

// Score awards a point. It returns false if the match was already decided.
func (s *Scoreboard) Score(player Player) bool {
	if s.hasWinner {
		return false
	}

	s.scores[player]++
	if s.scores[player] < s.limit {
		s.show(Message{Kind: MessageScore, Player: player})
	} else {
		s.winner = player
		s.hasWinner = true
		s.show(Message{Kind: MessageWinner, Player: player})
	}
	return true
}

// Scores returns both players' scores, left first
func (s *Scoreboard) Scores() [2]int { return s.scores }

// Limit returns the winning score
func (s *Scoreboard) Limit() int { return s.limit }

// Winner returns the winning player, if the match is decided
func (s *Scoreboard) Winner() (Player, bool) {
	return s.winner, s.hasWinner
}

// Message returns the banner on display
func (s *Scoreboard) Message() Message { return s.message }

// HideMessages clears any banner
func (s *Scoreboard) HideMessages() {
	s.message = Message{}
}

// Update ages the current banner
func (s *Scoreboard) Update(deltaTime float64) {
	if s.message.Kind != MessageNone {
		s.message.Age += deltaTime
	}
}

func (s *Scoreboard) show(m Message) {
	s.message = m
}
