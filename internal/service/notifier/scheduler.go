package notifier

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nutrabene/backoffice/pkg/logger"
)

const (
	schedulerInterval = time.Minute
	lockKey           = "nutrabene:reminder-job-lock"
	lockTTL           = 55 * time.Second
)

// Scheduler dispara o job de lembretes a cada minuto. Quando um cliente
// Redis é fornecido, um lock SETNX impede execuções simultâneas entre
// instâncias; sem Redis, um mutex local impede sobreposição na mesma
// instância.
type Scheduler struct {
	service *Service
	redis   *redis.Client
	logger  logger.Logger

	mu      sync.Mutex
	running bool
	stop    chan struct{}
	done    chan struct{}
}

// NewScheduler cria um novo agendador do job de lembretes. redisClient pode
// ser nil.
func NewScheduler(service *Service, redisClient *redis.Client, log logger.Logger) *Scheduler {
	return &Scheduler{
		service: service,
		redis:   redisClient,
		logger:  log,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start inicia o loop do agendador em uma goroutine própria
func (s *Scheduler) Start() {
	go s.loop()
	s.logger.Info("agendador de lembretes iniciado", "interval", schedulerInterval.String())
}

// Stop encerra o loop e aguarda a execução corrente terminar
func (s *Scheduler) Stop() {
	close(s.stop)
	<-s.done
	s.logger.Info("agendador de lembretes encerrado")
}

func (s *Scheduler) loop() {
	defer close(s.done)

	ticker := time.NewTicker(schedulerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

func (s *Scheduler) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), schedulerInterval)
	defer cancel()

	release, ok := s.acquireLock(ctx)
	if !ok {
		return
	}
	defer release()

	if _, err := s.service.Run(ctx, ""); err != nil {
		s.logger.Error("execução do job de lembretes falhou", "error", err)
	}
}

// acquireLock tenta obter exclusividade da execução. Com Redis usa SETNX com
// TTL; sem Redis, o mutex local garante ao menos que a própria instância não
// sobreponha execuções.
func (s *Scheduler) acquireLock(ctx context.Context) (func(), bool) {
	if s.redis == nil {
		s.mu.Lock()
		if s.running {
			s.mu.Unlock()
			return nil, false
		}
		s.running = true
		s.mu.Unlock()
		return func() {
			s.mu.Lock()
			s.running = false
			s.mu.Unlock()
		}, true
	}

	acquired, err := s.redis.SetNX(ctx, lockKey, time.Now().Format(time.RFC3339), lockTTL).Result()
	if err != nil {
		s.logger.Warn("lock distribuído indisponível, pulando execução", "error", err)
		return nil, false
	}
	if !acquired {
		return nil, false
	}
	return func() {
		if err := s.redis.Del(context.Background(), lockKey).Err(); err != nil {
			s.logger.Warn("erro ao liberar lock do job", "error", err)
		}
	}, true
}
