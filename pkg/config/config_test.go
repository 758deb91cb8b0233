package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"WORDPRESS_API_URL", "WORDPRESS_USERNAME",
		"WORDPRESS_PASSWORD", "WORDPRESS_APP_PASSWORD",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestResolve_PositionalArgsWin(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORDPRESS_API_URL", "https://env.example.com")

	creds, err := Resolve([]string{"https://arg.example.com", "admin", "secret"}, "")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if creds.SiteURL != "https://arg.example.com" {
		t.Errorf("SiteURL = %q, want the positional argument", creds.SiteURL)
	}
	if creds.Username != "admin" || creds.Password != "secret" {
		t.Errorf("credentials = %+v, want admin/secret", creds)
	}
}

func TestResolve_PartialArgsFallThroughToEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORDPRESS_API_URL", "https://env.example.com")
	t.Setenv("WORDPRESS_USERNAME", "envuser")
	t.Setenv("WORDPRESS_PASSWORD", "envpass")

	creds, err := Resolve([]string{"https://arg.example.com"}, "")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if creds.SiteURL != "https://env.example.com" {
		t.Errorf("SiteURL = %q, want the env value", creds.SiteURL)
	}
}

func TestResolve_AppPasswordFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORDPRESS_API_URL", "https://env.example.com")
	t.Setenv("WORDPRESS_USERNAME", "envuser")
	t.Setenv("WORDPRESS_APP_PASSWORD", "app secret")

	creds, err := Resolve(nil, "")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if creds.Password != "app secret" {
		t.Errorf("Password = %q, want the WORDPRESS_APP_PASSWORD value", creds.Password)
	}
}

func TestResolve_ConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "site.yaml")
	data := []byte("site_url: https://file.example.com\nusername: fileuser\napp_password: \"xxxx xxxx\"\n")
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}

	creds, err := Resolve(nil, path)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if creds.SiteURL != "https://file.example.com" {
		t.Errorf("SiteURL = %q, want the file value", creds.SiteURL)
	}
	if creds.Password != "xxxx xxxx" {
		t.Errorf("Password = %q, want the app_password alias applied", creds.Password)
	}
}

func TestResolve_NoSource(t *testing.T) {
	clearEnv(t)

	_, err := Resolve(nil, "")
	if !errors.Is(err, ErrNoCredentials) {
		t.Errorf("Resolve() error = %v, want ErrNoCredentials", err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    Credentials
		wantErr bool
	}{
		{
			name: "password key",
			yaml: "site_url: https://example.com\nusername: admin\npassword: pw\n",
			want: Credentials{SiteURL: "https://example.com", Username: "admin", Password: "pw"},
		},
		{
			name: "app_password alias",
			yaml: "site_url: https://example.com\napp_password: pw\n",
			want: Credentials{SiteURL: "https://example.com", Password: "pw", AppPassword: "pw"},
		},
		{
			name: "password wins over alias",
			yaml: "site_url: https://example.com\npassword: a\napp_password: b\n",
			want: Credentials{SiteURL: "https://example.com", Password: "a", AppPassword: "b"},
		},
		{
			name:    "missing site_url",
			yaml:    "username: admin\npassword: pw\n",
			wantErr: true,
		},
		{
			name:    "invalid yaml",
			yaml:    "site_url: [unclosed\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.yaml))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
