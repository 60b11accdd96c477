package board

import (
	"log"
	"sync"

	cerr "github.com/saeidalz13/battleship-board/internal/error"
)

type SceneManager interface {
	CreateScene() (*Scene, error)
	GetScene(sceneUuid string) (*Scene, error)
	TerminateScene(sceneUuid string)
	Count() int
}

type BoardSceneManager struct {
	layout Layout
	scenes map[string]*Scene
	mu     sync.RWMutex
}

var _ SceneManager = (*BoardSceneManager)(nil)

func NewBoardSceneManager(layout Layout) *BoardSceneManager {
	return &BoardSceneManager{
		layout: layout,
		scenes: make(map[string]*Scene, 10),
	}
}

func (bsm *BoardSceneManager) CreateScene() (*Scene, error) {
	scene, err := NewScene(bsm.layout)
	if err != nil {
		return nil, err
	}

	bsm.mu.Lock()
	bsm.scenes[scene.Uuid()] = scene
	bsm.mu.Unlock()

	return scene, nil
}

func (bsm *BoardSceneManager) GetScene(sceneUuid string) (*Scene, error) {
	bsm.mu.RLock()
	scene, prs := bsm.scenes[sceneUuid]
	bsm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrSceneNotExists(sceneUuid)
	}

	return scene, nil
}

func (bsm *BoardSceneManager) TerminateScene(sceneUuid string) {
	bsm.mu.Lock()
	defer bsm.mu.Unlock()

	if _, prs := bsm.scenes[sceneUuid]; !prs {
		return
	}
	delete(bsm.scenes, sceneUuid)
	log.Printf("scene terminated: %s\n", sceneUuid)
}

func (bsm *BoardSceneManager) Count() int {
	bsm.mu.RLock()
	defer bsm.mu.RUnlock()
	return len(bsm.scenes)
}
