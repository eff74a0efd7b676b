package discord

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

func (d *discordImpl) GetWebhookURL() string {
	return fmt.Sprintf("%s/%s/%s", webhookBaseURL, d.webhook.ID, d.webhook.Token)
}

func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.send(ctx, WebhookPayload{
		Content:  content,
		Username: d.config.DefaultUsername,
	})
}

func (d *discordImpl) SendEmbed(ctx context.Context, options MessageOptions) error {
	embed := Embed{
		Title:       options.Title,
		Description: truncate(options.Description, maxDescriptionLength),
		Color:       colorFor(options.Type),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Fields:      options.Fields,
	}
	if options.Footer != "" {
		embed.Footer = &EmbedFooter{Text: options.Footer}
	}
	return d.send(ctx, WebhookPayload{
		Username: d.config.DefaultUsername,
		Embeds:   []Embed{embed},
	})
}

func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	opts := MessageOptions{
		Type:        MessageTypeError,
		Title:       title,
		Description: description,
	}
	if err != nil {
		opts.Fields = []EmbedField{{Name: "Error", Value: truncate(err.Error(), 1024)}}
	}
	return d.SendEmbed(ctx, opts)
}

func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       "Unhandled error",
		Description: message,
	})
}

func (d *discordImpl) Close() error {
	return nil
}

func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	_, status, err := d.client.Post(ctx, d.GetWebhookURL(), payload, nil)
	if err != nil {
		d.l.Warnf(ctx, "pkg.discord.send: %v", err)
		return err
	}
	// Discord answers 204 on success, 200 when ?wait=true.
	if status != http.StatusNoContent && status != http.StatusOK {
		d.l.Warnf(ctx, "pkg.discord.send: status %d", status)
		return fmt.Errorf("%w: %d", errUnexpectedStatus, status)
	}
	return nil
}

func colorFor(t MessageType) int {
	switch t {
	case MessageTypeError:
		return colorError
	case MessageTypeWarning:
		return colorWarning
	default:
		return colorInfo
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
