package chillies

import "testing"

func TestSettle_KnownTuple(t *testing.T) {
	// 10 bags, 150kg at 20/kg:
	//   earnings = 150*20 + 10*45 = 3450
	//   commission = 2% = 69, service = 10*29 = 290
	//   charges = 359, net = 3091
	s := Settle(10, 150.0, 20.0)

	if s.TotalEarnings != 3450 {
		t.Errorf("TotalEarnings = %v, want 3450", s.TotalEarnings)
	}
	if s.Commission != 69 {
		t.Errorf("Commission = %v, want 69", s.Commission)
	}
	if s.ServiceCharge != 290 {
		t.Errorf("ServiceCharge = %v, want 290", s.ServiceCharge)
	}
	if s.TotalCharges != 359 {
		t.Errorf("TotalCharges = %v, want 359", s.TotalCharges)
	}
	if s.NetAmount != 3091 {
		t.Errorf("NetAmount = %v, want 3091", s.NetAmount)
	}
}

func TestSettle_SingleBag(t *testing.T) {
	s := Settle(1, 10.0, 100.0)
	// earnings = 1000 + 45 = 1045; commission = 20.9; service = 29
	if s.TotalEarnings != 1045 {
		t.Errorf("TotalEarnings = %v, want 1045", s.TotalEarnings)
	}
	if s.ServiceCharge != 29 {
		t.Errorf("ServiceCharge = %v, want 29", s.ServiceCharge)
	}
	if got, want := s.NetAmount, 1045-(1045*0.02+29); got != want {
		t.Errorf("NetAmount = %v, want %v", got, want)
	}
}

func TestSettle_Idempotent(t *testing.T) {
	a := Settle(7, 123.45, 18.5)
	b := Settle(7, 123.45, 18.5)
	if a != b {
		t.Fatalf("Settle not bit-identical across calls: %+v vs %+v", a, b)
	}
}

func TestSettle_ChargesAddUp(t *testing.T) {
	s := Settle(12, 200.0, 22.0)
	if s.TotalCharges != s.Commission+s.ServiceCharge {
		t.Errorf("TotalCharges %v != Commission %v + ServiceCharge %v", s.TotalCharges, s.Commission, s.ServiceCharge)
	}
	if s.NetAmount != s.TotalEarnings-s.TotalCharges {
		t.Errorf("NetAmount %v != TotalEarnings %v - TotalCharges %v", s.NetAmount, s.TotalEarnings, s.TotalCharges)
	}
}
