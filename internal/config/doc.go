// Package config manages user-level settings stored at ~/.create-express/config.yaml.
// Values can be overridden through CREATE_EXPRESS_* environment variables, and the
// invoking package manager's identity is read from npm_config_user_agent.
package config
