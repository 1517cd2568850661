package bind_group_provider

import "testing"

func TestNewBindGroupProvider(t *testing.T) {
	p := NewBindGroupProvider("object", WithIndexCount(36))
	if x := p.Label(); x != "object" {
		t.Fatalf("Label\nhave %q\nwant %q", x, "object")
	}
	if x := p.IndexCount(); x != 36 {
		t.Fatalf("IndexCount\nhave %d\nwant 36", x)
	}
	if p.BindGroup() != nil || p.BindGroupLayout() != nil || p.UniformBuffer() != nil {
		t.Fatal("bind group resources: have non-nil, want nil")
	}
	if p.TextureView() != nil || p.Sampler() != nil {
		t.Fatal("texture resources: have non-nil, want nil")
	}
	if p.VertexBuffer() != nil || p.IndexBuffer() != nil {
		t.Fatal("mesh buffers: have non-nil, want nil")
	}
}

func TestReleaseEmpty(t *testing.T) {
	p := NewBindGroupProvider("marker")
	p.SetMesh(nil, nil, 36)
	p.Release()
	if x := p.IndexCount(); x != 0 {
		t.Fatalf("IndexCount after Release\nhave %d\nwant 0", x)
	}
	// a second release is a no-op
	p.Release()
}
