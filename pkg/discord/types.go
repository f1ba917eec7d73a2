package discord

// InteractionType is the type field of an inbound interaction.
type InteractionType int

const (
	InteractionPing             InteractionType = 1
	InteractionCommand          InteractionType = 2
	InteractionMessageComponent InteractionType = 3
	InteractionModalSubmit      InteractionType = 5
)

// User is the platform identity attached to an interaction.
type User struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator"`
	GlobalName    string `json:"global_name,omitempty"`
}

// Member is the guild-scoped view of a user.
type Member struct {
	User  *User    `json:"user,omitempty"`
	Roles []string `json:"roles"`
}

// InteractionData carries the component or modal payload of an interaction.
type InteractionData struct {
	CustomID      string      `json:"custom_id"`
	ComponentType int         `json:"component_type,omitempty"`
	Components    []ActionRow `json:"components,omitempty"`
}

// Interaction is an inbound event delivered to the interactions webhook.
type Interaction struct {
	ID      string           `json:"id"`
	Type    InteractionType  `json:"type"`
	Token   string           `json:"token"`
	GuildID string           `json:"guild_id,omitempty"`
	Member  *Member          `json:"member,omitempty"`
	User    *User            `json:"user,omitempty"`
	Data    *InteractionData `json:"data,omitempty"`
}

// UserID returns the id of the user who triggered the interaction. In a
// guild the user rides inside the member object.
func (i Interaction) UserID() string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// DisplayName returns the classic username#discriminator tag, or the bare
// username for accounts migrated off discriminators.
func (i Interaction) DisplayName() string {
	user := i.User
	if i.Member != nil && i.Member.User != nil {
		user = i.Member.User
	}
	if user == nil {
		return ""
	}
	if user.Discriminator == "" || user.Discriminator == "0" {
		return user.Username
	}
	return user.Username + "#" + user.Discriminator
}

// FieldValue returns the submitted value of the modal text input with the
// given custom id, or "" if absent.
func (i Interaction) FieldValue(customID string) string {
	if i.Data == nil {
		return ""
	}
	for _, row := range i.Data.Components {
		for _, component := range row.Components {
			if component.CustomID == customID {
				return component.Value
			}
		}
	}
	return ""
}

// Component types and styles used by this bot.
const (
	componentTypeActionRow = 1
	componentTypeButton    = 2
	componentTypeTextInput = 4

	buttonStyleSecondary = 2
	buttonStyleSuccess   = 3

	textInputStyleShort = 1
)

// ActionRow is a row of message or modal components.
type ActionRow struct {
	Type       int         `json:"type"`
	Components []Component `json:"components"`
}

// Component is a button or text input, for both outbound payloads and
// inbound modal submissions.
type Component struct {
	Type        int    `json:"type"`
	CustomID    string `json:"custom_id,omitempty"`
	Label       string `json:"label,omitempty"`
	Style       int    `json:"style,omitempty"`
	Value       string `json:"value,omitempty"`
	MinLength   int    `json:"min_length,omitempty"`
	MaxLength   int    `json:"max_length,omitempty"`
	Required    bool   `json:"required,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
}

// EmbedField is one name/value pair inside an embed.
type EmbedField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Embed is a rich message block.
type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

// Message is an outbound channel message.
type Message struct {
	Content    string      `json:"content,omitempty"`
	Embeds     []Embed     `json:"embeds,omitempty"`
	Components []ActionRow `json:"components,omitempty"`
}

// ResponseType is the type field of an interaction response.
type ResponseType int

const (
	ResponsePong           ResponseType = 1
	ResponseChannelMessage ResponseType = 4
	ResponseModal          ResponseType = 9
)

// FlagEphemeral marks a response message as visible only to the invoking user.
const FlagEphemeral = 1 << 6

// ResponseData is the payload of a message or modal interaction response.
type ResponseData struct {
	Content    string      `json:"content,omitempty"`
	Flags      int         `json:"flags,omitempty"`
	Embeds     []Embed     `json:"embeds,omitempty"`
	Components []ActionRow `json:"components,omitempty"`

	// Modal responses only.
	CustomID string `json:"custom_id,omitempty"`
	Title    string `json:"title,omitempty"`
}

// InteractionResponse is the body written back to an interaction webhook call.
type InteractionResponse struct {
	Type ResponseType  `json:"type"`
	Data *ResponseData `json:"data,omitempty"`
}
