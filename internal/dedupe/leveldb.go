package dedupe

import (
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/hmap/store/hybrid"
)

// LevelDBBackend is a disk-backed Backend for pair streams too large to
// hold in memory. Elements are internal/batch's encoded (a, b) pair
// keys, not raw input strings.
type LevelDBBackend struct {
	storage *hybrid.HybridMap
}

func NewLevelDBBackend() *LevelDBBackend {
	l := &LevelDBBackend{}
	db, err := hybrid.New(hybrid.DefaultDiskOptions)
	if err != nil {
		gologger.Fatal().Msgf("failed to create temp dir for tokendist dedupe got: %v", err)
	}
	l.storage = db
	return l
}

func (l *LevelDBBackend) Upsert(pairKey string) {
	if err := l.storage.Set(pairKey, nil); err != nil {
		gologger.Error().Msgf("dedupe: leveldb: got %v while writing %v", err, pairKey)
	}
}

func (l *LevelDBBackend) IterCallback(callback func(pairKey string)) {
	l.storage.Scan(func(k, _ []byte) error {
		callback(string(k))
		return nil
	})
}

func (l *LevelDBBackend) Cleanup() {
	_ = l.storage.Close()
}
