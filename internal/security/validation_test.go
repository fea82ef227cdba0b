package security

import "testing"

func TestValidateImageURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{
			name: "https",
			url:  "https://example.com/image.jpg",
		},
		{
			name: "http",
			url:  "http://example.com/image.jpg",
		},
		{
			name:    "empty",
			url:     "",
			wantErr: true,
		},
		{
			name:    "file scheme",
			url:     "file:///etc/passwd",
			wantErr: true,
		},
		{
			name:    "no host",
			url:     "https:///image.jpg",
			wantErr: true,
		},
		{
			name:    "localhost",
			url:     "http://localhost:8080/image.jpg",
			wantErr: true,
		},
		{
			name:    "loopback ip",
			url:     "http://127.0.0.1/image.jpg",
			wantErr: true,
		},
		{
			name:    "private ip",
			url:     "http://192.168.1.10/image.jpg",
			wantErr: true,
		},
		{
			name:    "link local",
			url:     "http://169.254.169.254/latest/meta-data",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImageURL(tt.url)
			if tt.wantErr && err == nil {
				t.Errorf("ValidateImageURL(%q) expected error", tt.url)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateImageURL(%q) unexpected error: %v", tt.url, err)
			}
		})
	}
}
