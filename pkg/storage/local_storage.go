package storage

import (
	"context"
	"encoding/json"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/shibukawa/configdir"
	"go.uber.org/zap"

	"github.com/six78/crew-cli/internal/config"
	"github.com/six78/crew-cli/pkg/protocol"
)

const (
	playerStorageFileName = "player.json"
	roomsDirectory        = "rooms"
	matchesDirectory      = "matches"
)

type LocalStorage struct {
	player playerStorage

	localPath string
	folder    *configdir.Config
	mutex     *sync.RWMutex
}

type playerStorage struct {
	ID   protocol.PlayerID `json:"id"`
	Name string            `json:"name"`
}

type roomStorage struct {
	State *protocol.State `json:"state"`
}

// NewLocalStorage keeps files under localPath, or in the user config folder when it's empty.
func NewLocalStorage(localPath string) *LocalStorage {
	return &LocalStorage{
		localPath: localPath,
		mutex:     &sync.RWMutex{},
	}
}

func (s *LocalStorage) Initialize() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.localPath != "" {
		s.folder = &configdir.Config{
			Path: s.localPath,
			Type: configdir.Local,
		}
	} else {
		configDirs := configdir.New(config.VendorName, config.ApplicationName)
		folders := configDirs.QueryFolders(configdir.Global)
		if len(folders) == 0 {
			return errors.New("no config folder found")
		}
		s.folder = folders[0]
	}

	err := s.readPlayer()
	config.Logger.Info("storage initialized",
		zap.Any("player", s.player),
		zap.String("path", s.folder.Path),
		zap.Error(err),
	)
	return err
}

func (s *LocalStorage) readPlayer() error {
	if !s.folder.Exists(playerStorageFileName) {
		config.Logger.Info("no player storage found")
		return nil
	}

	data, err := s.folder.ReadFile(playerStorageFileName)
	if err != nil {
		return errors.Wrap(err, "failed to read player data")
	}

	err = json.Unmarshal(data, &s.player)
	if err == nil {
		return nil
	}

	config.Logger.Error("failed to parse player storage, clearing storage", zap.Error(err))

	s.player = playerStorage{}
	err = s.savePlayerStorage()
	if err != nil {
		config.Logger.Error("failed to reset player storage", zap.Error(err))
	}

	return nil
}

func (s *LocalStorage) savePlayerStorage() error {
	playerJson, err := json.Marshal(s.player)
	if err != nil {
		return errors.Wrap(err, "failed to marshal player storage")
	}

	err = s.folder.WriteFile(playerStorageFileName, playerJson)
	if err != nil {
		return errors.Wrap(err, "failed to save player storage")
	}

	return nil
}

func (s *LocalStorage) ResetPlayer() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.player.ID = ""
	s.player.Name = ""
	return s.savePlayerStorage()
}

func (s *LocalStorage) PlayerID() protocol.PlayerID {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.player.ID
}

func (s *LocalStorage) SetPlayerID(id protocol.PlayerID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.player.ID = id
	return s.savePlayerStorage()
}

func (s *LocalStorage) PlayerName() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.player.Name
}

func (s *LocalStorage) SetPlayerName(name string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.player.Name = name
	return s.savePlayerStorage()
}

func (s *LocalStorage) LoadRoomState(roomID protocol.RoomID) (*protocol.State, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	filePath := roomFilePath(roomID)
	if !s.folder.Exists(filePath) {
		return nil, errors.Wrap(ErrRoomNotFound, roomID.String())
	}

	data, err := s.folder.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read room storage file")
	}

	var room roomStorage
	err = json.Unmarshal(data, &room)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal storage file")
	}

	return room.State, nil
}

func (s *LocalStorage) SaveRoomState(roomID protocol.RoomID, state *protocol.State) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	room := roomStorage{
		State: state,
	}

	roomJson, err := json.Marshal(room)
	if err != nil {
		return errors.Wrap(err, "failed to marshal room data")
	}

	err = s.folder.WriteFile(roomFilePath(roomID), roomJson)
	if err != nil {
		return errors.Wrap(err, "failed to write room storage")
	}

	return nil
}

// SaveMatch writes the summary, keeping the creation time of an earlier entry with the same seeds.
func (s *LocalStorage) SaveMatch(_ context.Context, summary *protocol.MatchSummary) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	filePath := matchFilePath(summary.Seeds())
	if previous, err := s.readMatch(filePath); err == nil {
		stored := *summary
		stored.CreatedAt = previous.CreatedAt
		summary = &stored
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return errors.Wrap(err, "failed to marshal match summary")
	}

	err = s.folder.WriteFile(filePath, data)
	if err != nil {
		return errors.Wrap(err, "failed to write match summary")
	}
	return nil
}

func (s *LocalStorage) LoadMatch(_ context.Context, seeds protocol.Seeds) (*protocol.MatchSummary, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.readMatch(matchFilePath(seeds))
}

// ListMatches returns the summaries the player took part in, newest first.
// An empty id lists every summary.
func (s *LocalStorage) ListMatches(_ context.Context, playerID protocol.PlayerID) ([]*protocol.MatchSummary, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entries, err := os.ReadDir(filepath.Join(s.folder.Path, matchesDirectory))
	if errors.Is(err, os.ErrNotExist) {
		return []*protocol.MatchSummary{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list match summaries")
	}

	result := make([]*protocol.MatchSummary, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		summary, err := s.readMatch(path.Join(matchesDirectory, entry.Name()))
		if err != nil {
			config.Logger.Warn("skipping unreadable match summary",
				zap.String("file", entry.Name()),
				zap.Error(err))
			continue
		}
		if _, ok := summary.Players[playerID]; playerID != "" && !ok {
			continue
		}
		result = append(result, summary)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].UpdatedAt > result[j].UpdatedAt
	})
	return result, nil
}

func (s *LocalStorage) readMatch(filePath string) (*protocol.MatchSummary, error) {
	if !s.folder.Exists(filePath) {
		return nil, ErrMatchNotFound
	}

	data, err := s.folder.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read match summary")
	}

	var summary protocol.MatchSummary
	err = json.Unmarshal(data, &summary)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal match summary")
	}
	return &summary, nil
}

func roomFilePath(roomID protocol.RoomID) string {
	return path.Join(roomsDirectory, roomID.String()+".json")
}

func matchFilePath(seeds protocol.Seeds) string {
	return path.Join(matchesDirectory, seeds.String()+".json")
}
