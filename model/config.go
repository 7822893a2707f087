package model

// Config mirrors the top level of config.yaml.
type Config struct {
	Token     string    `mapstructure:"TOKEN"`
	Commands  Commands  `mapstructure:"commands"`
	RecordBot RecordBot `mapstructure:"recordBot"`
	Keepalive Keepalive `mapstructure:"keepalive"`
}

// RecordBot holds the moderation settings of the "recordBot" section.
type RecordBot struct {
	ApproverRole      string `mapstructure:"approver_role"`
	ApprovalChannelID string `mapstructure:"approval_channel_id"`
	FinalChannelID    string `mapstructure:"final_channel_id"`
	Store             string `mapstructure:"store"`
}

// Commands holds the "commands" section.
type Commands struct {
	Allowguilds []string `mapstructure:"allowguilds"`
}

// Keepalive configures the liveness listeners.
type Keepalive struct {
	HTTPAddr string `mapstructure:"http_addr"`
	GRPCAddr string `mapstructure:"grpc_addr"`
}
