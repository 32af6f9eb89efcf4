package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/pr-poehali-dev/wild-politics-portal/config"
	articleentities "github.com/pr-poehali-dev/wild-politics-portal/internal/domain/article/entities"
	commententities "github.com/pr-poehali-dev/wild-politics-portal/internal/domain/comment/entities"
)

const (
	topicArticlePublished = "articles.published"
	topicArticleRejected  = "articles.rejected"
	topicCommentApproved  = "comments.approved"
)

// ArticlePublishedMessage notifies the delivery bot about a freshly published article
type ArticlePublishedMessage struct {
	ArticleID  uint   `json:"article_id"`
	ChannelID  uint   `json:"channel_id"`
	AuthorID   uint   `json:"author_id"`
	Title      string `json:"title"`
	Excerpt    string `json:"excerpt"`
	IsBreaking bool   `json:"is_breaking"`
	Timestamp  int64  `json:"timestamp"`
}

// ArticleRejectedMessage notifies the author's bot chat about a rejected submission
type ArticleRejectedMessage struct {
	ArticleID uint   `json:"article_id"`
	AuthorID  uint   `json:"author_id"`
	Title     string `json:"title"`
	Timestamp int64  `json:"timestamp"`
}

// CommentApprovedMessage notifies about a comment that became publicly visible
type CommentApprovedMessage struct {
	CommentID uint  `json:"comment_id"`
	ArticleID uint  `json:"article_id"`
	AuthorID  uint  `json:"author_id"`
	Timestamp int64 `json:"timestamp"`
}

// Producer publishes moderation outcome events for downstream consumers
type Producer struct {
	writer *kafka.Writer
	logger zerolog.Logger
}

func NewProducer(cfg *config.KafkaConfig, logger zerolog.Logger) (*Producer, error) {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info().
		Strs("brokers", cfg.Brokers).
		Msg("Kafka producer initialized")

	return &Producer{
		writer: writer,
		logger: logger,
	}, nil
}

// SendArticlePublished sends an article published event
func (p *Producer) SendArticlePublished(ctx context.Context, article *articleentities.Article) error {
	msg := ArticlePublishedMessage{
		ArticleID:  article.ID,
		ChannelID:  article.ChannelID,
		AuthorID:   article.AuthorID,
		Title:      article.Title,
		Excerpt:    article.Excerpt,
		IsBreaking: article.IsBreaking,
		Timestamp:  time.Now().Unix(),
	}

	if err := p.send(ctx, topicArticlePublished, fmt.Sprintf("article-%d", article.ID), msg); err != nil {
		p.logger.Error().Err(err).
			Uint("article_id", article.ID).
			Msg("Failed to send article published message")
		return err
	}

	p.logger.Debug().
		Uint("article_id", article.ID).
		Bool("is_breaking", article.IsBreaking).
		Msg("Article published message sent")

	return nil
}

// SendArticleRejected sends an article rejected event
func (p *Producer) SendArticleRejected(ctx context.Context, article *articleentities.Article) error {
	msg := ArticleRejectedMessage{
		ArticleID: article.ID,
		AuthorID:  article.AuthorID,
		Title:     article.Title,
		Timestamp: time.Now().Unix(),
	}

	if err := p.send(ctx, topicArticleRejected, fmt.Sprintf("article-%d", article.ID), msg); err != nil {
		p.logger.Error().Err(err).
			Uint("article_id", article.ID).
			Msg("Failed to send article rejected message")
		return err
	}

	p.logger.Debug().
		Uint("article_id", article.ID).
		Msg("Article rejected message sent")

	return nil
}

// SendCommentApproved sends a comment approved event
func (p *Producer) SendCommentApproved(ctx context.Context, comment *commententities.Comment) error {
	msg := CommentApprovedMessage{
		CommentID: comment.ID,
		ArticleID: comment.ArticleID,
		AuthorID:  comment.AuthorID,
		Timestamp: time.Now().Unix(),
	}

	if err := p.send(ctx, topicCommentApproved, fmt.Sprintf("comment-%d", comment.ID), msg); err != nil {
		p.logger.Error().Err(err).
			Uint("comment_id", comment.ID).
			Msg("Failed to send comment approved message")
		return err
	}

	p.logger.Debug().
		Uint("comment_id", comment.ID).
		Msg("Comment approved message sent")

	return nil
}

func (p *Producer) send(ctx context.Context, topic, key string, msg any) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
	})
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

// Close closes the producer
func (p *Producer) Close() error {
	return p.writer.Close()
}
