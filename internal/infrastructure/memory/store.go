// Package memory implementa los puertos de persistencia en memoria.
// Se usa con STORAGE_DRIVER=memory (demo local) y en los tests de casos de uso y HTTP.
package memory

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/jhoicas/inventario-system/internal/domain/entity"
)

// Store estado compartido por los repositorios en memoria.
type Store struct {
	mu            sync.RWMutex
	txMu          sync.Mutex
	users         map[string]*entity.User
	products      map[string]*entity.Product
	notifications map[string]*notificationRow
	seq           int64
}

type notificationRow struct {
	n   entity.Notification
	seq int64
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		users:         make(map[string]*entity.User),
		products:      make(map[string]*entity.Product),
		notifications: make(map[string]*notificationRow),
	}
}

// fold un Caser nuevo por llamada: no se puede compartir entre goroutines.
func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

func copyUser(u *entity.User) *entity.User {
	c := *u
	return &c
}

func copyProduct(p *entity.Product) *entity.Product {
	c := *p
	return &c
}
