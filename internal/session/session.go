package session

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"
)

// Entry is one accepted turn in a game's transcript: the raw utterance
// fed to the parser, the command it resolved to (rendered as text, not
// re-parsed), the move that was executed, and the FEN the board reached.
type Entry struct {
	Utterance string    `json:"utterance"`
	Command   string    `json:"command"`
	Move      string    `json:"move"`
	FEN       string    `json:"fen"`
	Recorded  time.Time `json:"recorded"`
}

// Store wraps a badger instance holding every game's append-only log.
type Store struct {
	db  *badger.DB
	log *logrus.Logger
}

// Open opens (creating if necessary) the badger database at dir. Passing
// a nil logger falls back to a standard logrus.Logger at its default level.
func Open(dir string, log *logrus.Logger) (*Store, error) {
	if log == nil {
		log = logrus.New()
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // badger's own logger is noisy; we log at our boundary instead

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("session: opening store: %w", err)
	}

	return &Store{db: db, log: log}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Append records entry as the next turn of gameID's transcript.
func (s *Store) Append(gameID string, entry Entry) error {
	entry.Recorded = time.Now()

	seq, err := s.nextSeq(gameID)
	if err != nil {
		s.log.WithError(err).WithField("game_id", gameID).Error("session: failed to allocate sequence number")
		return err
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("session: marshaling entry: %w", err)
	}

	key := entryKey(gameID, seq)
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
	if err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"game_id": gameID,
			"move":    entry.Move,
		}).Error("session: failed to append entry")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"game_id": gameID,
		"move":    entry.Move,
		"seq":     seq,
	}).Debug("session: appended entry")

	return nil
}

// History returns every recorded entry for gameID in the order it was appended.
func (s *Store) History(gameID string) ([]Entry, error) {
	var entries []Entry

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(entryPrefix(gameID))
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				var e Entry
				if err := json.Unmarshal(val, &e); err != nil {
					return err
				}
				entries = append(entries, e)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	return entries, err
}

func (s *Store) nextSeq(gameID string) (int, error) {
	key := []byte(seqKey(gameID))
	var seq int

	err := s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err == nil {
			err = item.Value(func(val []byte) error {
				_, scanErr := fmt.Sscanf(string(val), "%d", &seq)
				return scanErr
			})
			if err != nil {
				return err
			}
		} else if err != badger.ErrKeyNotFound {
			return err
		}

		seq++
		return txn.Set(key, []byte(fmt.Sprintf("%d", seq)))
	})

	return seq, err
}

func entryPrefix(gameID string) string {
	return fmt.Sprintf("game:%s:entry:", gameID)
}

func entryKey(gameID string, seq int) []byte {
	return []byte(fmt.Sprintf("%s%010d", entryPrefix(gameID), seq))
}

func seqKey(gameID string) string {
	return fmt.Sprintf("game:%s:seq", gameID)
}
