package notification

import (
	"context"
	"encoding/json"
	"log"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Event struct {
	UserID uint   `json:"user_id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	Kind   string `json:"kind"`
	RefID  *uint  `json:"ref_id"`
}

const (
	KindNewAppointment       = "new_appointment"
	KindAppointmentConfirmed = "appointment_confirmed"
	KindAppointmentCancelled = "appointment_cancelled"
)

// Dispatcher entrega notificações fora da transação de booking:
// grava a linha e publica no Redis para quem estiver ouvindo.
// Falha aqui nunca derruba a reserva — no máximo vira log.
type Dispatcher struct {
	db    *gorm.DB
	rdb   *redis.Client
	queue chan Event
}

func NewDispatcher(db *gorm.DB, rdb *redis.Client) *Dispatcher {
	d := &Dispatcher{
		db:    db,
		rdb:   rdb,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		row := models.Notification{
			UserID: ev.UserID,
			Title:  ev.Title,
			Body:   ev.Body,
			Kind:   ev.Kind,
			RefID:  ev.RefID,
		}

		if err := d.db.Create(&row).Error; err != nil {
			log.Println("notification error:", err)
			continue
		}

		d.publish(ev)
	}
}

func (d *Dispatcher) publish(ev Event) {
	if d.rdb == nil {
		return
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}

	channel := channelFor(ev.UserID)
	if err := d.rdb.Publish(context.Background(), channel, payload).Err(); err != nil {
		log.Println("notification publish error:", err)
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos (nunca quebrar a API)
		log.Println("notification queue full, dropping event")
	}
}
